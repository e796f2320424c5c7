// Package seeders fills an empty database with a small demo org:
// one admin, an HR manager and a contact-center branch three levels
// deep, enough to see the hierarchy and the org chart working.
package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const defaultPassword = "changeme123"

type seedUser struct {
	email     string
	firstName string
	lastName  string
	role      string
	title     string
	reportsTo string // email of this user's manager, resolved after insert
}

var demoUsers = []seedUser{
	{email: "admin@pulse.local", firstName: "Alice", lastName: "Admin", role: "admin", title: "System Administrator"},
	{email: "hr@pulse.local", firstName: "Hanna", lastName: "Reyes", role: "hr", title: "HR Manager", reportsTo: "admin@pulse.local"},
	{email: "ops@pulse.local", firstName: "Omar", lastName: "Said", role: "contact_center_ops_manager", title: "Ops Manager", reportsTo: "admin@pulse.local"},
	{email: "manager@pulse.local", firstName: "Mary", lastName: "Chen", role: "contact_center_manager", title: "CC Manager", reportsTo: "ops@pulse.local"},
	{email: "lead@pulse.local", firstName: "Lena", lastName: "Petrova", role: "team_leader", title: "Team Leader", reportsTo: "manager@pulse.local"},
	{email: "agent1@pulse.local", firstName: "Aron", lastName: "Berg", role: "agent", title: "Agent", reportsTo: "lead@pulse.local"},
	{email: "agent2@pulse.local", firstName: "Bella", lastName: "Costa", role: "agent", title: "Agent", reportsTo: "lead@pulse.local"},
}

func Run(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding database...")
	if err := seedDepartments(ctx, db); err != nil {
		return err
	}
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	log.Println("seeding done")
	return nil
}

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range []string{"Administration", "Human Resources", "Contact Center"} {
		_, err := db.Exec(ctx,
			`INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("failed to seed department %s: %w", name, err)
		}
	}
	return nil
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ids := make(map[string]string, len(demoUsers))
	for _, u := range demoUsers {
		var existing string
		err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, u.email).Scan(&existing)
		if err == nil {
			ids[u.email] = existing
			continue
		}

		id := uuid.NewString()
		_, err = db.Exec(ctx, `
			INSERT INTO users (id, first_name, last_name, email, password, role, title, is_active, must_change_password)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, TRUE)
		`, id, u.firstName, u.lastName, u.email, string(hash), u.role, u.title)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
		ids[u.email] = id
		log.Printf("  - created %s (%s)", u.email, u.role)
	}

	// second pass, managers exist by now
	for _, u := range demoUsers {
		if u.reportsTo == "" {
			continue
		}
		managerID, ok := ids[u.reportsTo]
		if !ok {
			return fmt.Errorf("manager %s not found for %s", u.reportsTo, u.email)
		}
		if _, err := db.Exec(ctx,
			`UPDATE users SET reports_to = $1 WHERE id = $2 AND reports_to IS NULL`,
			managerID, ids[u.email]); err != nil {
			return fmt.Errorf("failed to link %s to manager: %w", u.email, err)
		}
	}
	return nil
}
