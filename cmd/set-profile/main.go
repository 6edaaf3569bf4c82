// CLI tool to write the stored profile directly into the postgres kv_store,
// e.g. to seed a fresh deployment. The record replaces any existing profile.
// Usage: go run ./cmd/set-profile (from the repo root, after ./cmd/migrate)
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// profileKey must match the key the API server reads.
const profileKey = "fitgenei-profile"

// profile mirrors the server's stored record.
type profile struct {
	Age        int     `json:"age"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	Activity   string  `json:"activity"`
	Goal       string  `json:"goal"`
	Gender     string  `json:"gender"`
	Preference string  `json:"preference"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	p, err := readProfile(bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
		os.Exit(1)
	}

	data, err := json.Marshal(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(context.Background(), os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	_, err = conn.Exec(context.Background(),
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		profileKey, string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nProfile saved.\n")
	fmt.Printf("  Age:        %d\n", p.Age)
	fmt.Printf("  Height:     %.0f cm\n", p.Height)
	fmt.Printf("  Weight:     %.1f kg\n", p.Weight)
	fmt.Printf("  Activity:   %s\n", p.Activity)
	fmt.Printf("  Goal:       %s\n", p.Goal)
}

// readProfile prompts for each field. Blank enum answers take the same
// defaults as the page form.
func readProfile(r *bufio.Reader) (profile, error) {
	prompt := func(label, fallback string) string {
		fmt.Print(label)
		if fallback != "" {
			fmt.Printf(" [%s]", fallback)
		}
		fmt.Print(": ")
		line, _ := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return fallback
		}
		return line
	}

	var p profile
	var err error
	if p.Age, err = strconv.Atoi(prompt("Age", "")); err != nil || p.Age <= 0 {
		return p, fmt.Errorf("age must be a positive integer")
	}
	if p.Height, err = strconv.ParseFloat(prompt("Height (cm)", ""), 64); err != nil || p.Height <= 0 {
		return p, fmt.Errorf("height must be a positive number")
	}
	if p.Weight, err = strconv.ParseFloat(prompt("Weight (kg)", ""), 64); err != nil || p.Weight <= 0 {
		return p, fmt.Errorf("weight must be a positive number")
	}
	p.Activity = prompt("Activity (sedentary/moderate/active)", "moderate")
	p.Goal = prompt("Goal (loss/maintain/gain)", "maintain")
	p.Gender = prompt("Gender (male/female)", "male")
	p.Preference = prompt("Diet preference (veg/nonveg/mixed)", "mixed")
	return p, nil
}
