package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Seeds the first admin account against a running API instance, then writes a
// sample note with it so the deployment can be smoke-checked end to end.
func main() {
	color.Cyan("🌱 Seeding initial records\n")

	adminName := getEnv("SEED_ADMIN_NAME", "admin")
	adminPassword := getEnv("SEED_ADMIN_PASSWORD", "changeme123")

	// 1. Create the admin user (user creation is the open bootstrap endpoint)
	color.Yellow("\n1. Create admin user '%s'", adminName)
	userReq := map[string]interface{}{
		"name":     adminName,
		"password": adminPassword,
		"role":     "ADMIN",
		"active":   true,
	}
	resp, body, err := sendRequest("POST", "/user/v1", userReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var createUserResp map[string]interface{}
	json.Unmarshal(body, &createUserResp)
	prettyPrint(createUserResp)

	// 2. Write a sample note with the new credentials
	color.Yellow("\n2. Create smoke-test note")
	noteReq := map[string]interface{}{
		"auth": map[string]interface{}{
			"username": adminName,
			"password": adminPassword,
		},
		"note": map[string]interface{}{
			"title":       "Welcome",
			"content":     "Seeded note, safe to delete.",
			"owner_name":  adminName,
			"owner_email": getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		},
	}
	resp, body, err = sendRequest("POST", "/note/v1", noteReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var createNoteResp map[string]interface{}
	json.Unmarshal(body, &createNoteResp)
	prettyPrint(createNoteResp)

	color.Cyan("\n✅ Seed complete")
}
