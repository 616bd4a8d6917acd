package controller

import (
	"strconv"

	"notes-backend/internal/dto"
	"notes-backend/internal/mapper"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	CreateBulk(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Patch(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	authService service.IAuthService
}

func NewNoteController(noteService service.INoteService, authService service.IAuthService) INoteController {
	return &noteController{
		noteService: noteService,
		authService: authService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("bulk", c.CreateBulk)
	h.Get(":id", c.Get)
	h.Put(":id", c.Update)
	h.Patch(":id", c.Patch)
	h.Delete(":id", c.Delete)
}

// authorized runs the credential gate. The denial response does not reveal
// whether the user was absent or the password mismatched.
func (c *noteController) authorized(ctx *fiber.Ctx, auth dto.AuthRequest) bool {
	return c.authService.Validate(ctx.Context(), auth.Username, auth.Password)
}

func denyInvalidCredentials(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid credentials"))
}

func parseNoteId(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}
	return id, nil
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	var auth dto.AuthRequest
	if err := ctx.BodyParser(&auth); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(auth); err != nil {
		return err
	}
	if !c.authorized(ctx, auth) {
		return denyInvalidCredentials(ctx)
	}

	notes, err := c.noteService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", mapper.ToNoteResponses(notes)))
}

func (c *noteController) Get(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var auth dto.AuthRequest
	if err := ctx.BodyParser(&auth); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(auth); err != nil {
		return err
	}
	if !c.authorized(ctx, auth) {
		return denyInvalidCredentials(ctx)
	}

	note, err := c.noteService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get note", mapper.ToNoteResponse(note)))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !c.authorized(ctx, req.Auth) {
		return denyInvalidCredentials(ctx)
	}

	note, err := c.noteService.Create(ctx.Context(), &req.Note)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", mapper.ToNoteResponse(note)))
}

func (c *noteController) CreateBulk(ctx *fiber.Ctx) error {
	var req dto.BulkNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !c.authorized(ctx, req.Auth) {
		return denyInvalidCredentials(ctx)
	}

	payloads := make([]*dto.NotePayload, len(req.Notes))
	for i := range req.Notes {
		payloads[i] = &req.Notes[i]
	}

	notes, err := c.noteService.CreateBulk(ctx.Context(), payloads)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create notes", mapper.ToNoteResponses(notes)))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !c.authorized(ctx, req.Auth) {
		return denyInvalidCredentials(ctx)
	}

	note, err := c.noteService.Update(ctx.Context(), id, &req.Note)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", mapper.ToNoteResponse(note)))
}

func (c *noteController) Patch(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var req dto.PatchNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !c.authorized(ctx, req.Auth) {
		return denyInvalidCredentials(ctx)
	}

	note, err := c.noteService.Patch(ctx.Context(), id, &req.Note)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success patch note", mapper.ToNoteResponse(note)))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var auth dto.AuthRequest
	if err := ctx.BodyParser(&auth); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(auth); err != nil {
		return err
	}
	if !c.authorized(ctx, auth) {
		return denyInvalidCredentials(ctx)
	}

	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete note", fiber.Map{"id": id}))
}
