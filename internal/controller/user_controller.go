package controller

import (
	"notes-backend/internal/dto"
	"notes-backend/internal/mapper"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	authService service.IAuthService
}

func NewUserController(userService service.IUserService, authService service.IAuthService) IUserController {
	return &userController{
		userService: userService,
		authService: authService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	// Create stays open: it is the bootstrap path for the first account.
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":name", c.Get)
	h.Put(":name", c.Update)
	h.Delete(":name", c.Delete)
}

func (c *userController) authorized(ctx *fiber.Ctx, auth dto.AuthRequest) bool {
	return c.authService.Validate(ctx.Context(), auth.Username, auth.Password)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var payload dto.UserPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(payload); err != nil {
		return err
	}

	user, err := c.userService.Create(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create user", mapper.ToUserResponse(user)))
}

func (c *userController) Get(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

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

	user, err := c.userService.GetByName(ctx.Context(), name)
	if err != nil {
		return err
	}
	if user == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("user not found: " + name))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user", mapper.ToUserResponse(user)))
}

func (c *userController) List(ctx *fiber.Ctx) error {
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

	users, err := c.userService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list users", mapper.ToUserResponses(users)))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !c.authorized(ctx, req.Auth) {
		return denyInvalidCredentials(ctx)
	}

	user, err := c.userService.Update(ctx.Context(), name, &req.User)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user", mapper.ToUserResponse(user)))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

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

	deleted, err := c.userService.Delete(ctx.Context(), name)
	if err != nil {
		return err
	}
	if !deleted {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("user not found: " + name))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete user", dto.DeleteUserResponse{Name: name, Deleted: true}))
}
