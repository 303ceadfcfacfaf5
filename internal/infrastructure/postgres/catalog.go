package postgres

import (
	"context"
	"fmt"
)

// DDL del catálogo compartido (schema public). Idempotente: todo es IF NOT
// EXISTS para que el arranque pueda repetirse sin efecto. Los estados van como
// TEXT + CHECK en lugar de enums de PostgreSQL (CREATE TYPE no soporta IF NOT
// EXISTS y rompería la idempotencia del bootstrap).
var catalogDDL = []struct {
	name string
	sql  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id              UUID PRIMARY KEY,
			email           TEXT NOT NULL UNIQUE,
			name            TEXT NOT NULL,
			hashed_password TEXT NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at      TIMESTAMPTZ
		)`},
	{"tenants", `
		CREATE TABLE IF NOT EXISTS tenants (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			schema     TEXT NOT NULL UNIQUE,
			status     TEXT NOT NULL DEFAULT 'active'
			           CHECK (status IN ('active', 'inactive', 'suspended')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`},
	{"tenant_users", `
		CREATE TABLE IF NOT EXISTS tenant_users (
			id         UUID PRIMARY KEY,
			user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			tenant_id  TEXT NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
			role       TEXT NOT NULL DEFAULT 'employee'
			           CHECK (role IN ('admin', 'manager', 'employee')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, tenant_id)
		)`},
	{"plans", `
		CREATE TABLE IF NOT EXISTS plans (
			id            UUID PRIMARY KEY,
			name          TEXT NOT NULL UNIQUE,
			price_monthly INTEGER NOT NULL,
			price_yearly  INTEGER NOT NULL,
			features      TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},
	{"subscriptions", `
		CREATE TABLE IF NOT EXISTS subscriptions (
			id         UUID PRIMARY KEY,
			tenant_id  TEXT NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
			plan_id    UUID NOT NULL REFERENCES plans(id) ON DELETE RESTRICT,
			status     TEXT NOT NULL DEFAULT 'active'
			           CHECK (status IN ('active', 'past_due', 'canceled', 'trialing')),
			start_date TIMESTAMPTZ NOT NULL,
			end_date   TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},
	{"payments", `
		CREATE TABLE IF NOT EXISTS payments (
			id              UUID PRIMARY KEY,
			subscription_id UUID NOT NULL REFERENCES subscriptions(id) ON DELETE CASCADE,
			amount          INTEGER NOT NULL,
			status          TEXT NOT NULL DEFAULT 'pending'
			                CHECK (status IN ('paid', 'pending', 'failed')),
			paid_at         TIMESTAMPTZ,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},
}

// EnsureCatalog crea las tablas del catálogo compartido si no existen.
// Se ejecuta al arrancar la aplicación y en el seeder.
func EnsureCatalog(ctx context.Context, q Querier) error {
	for _, stmt := range catalogDDL {
		if _, err := q.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("bootstrap catálogo: tabla %s: %w", stmt.name, err)
		}
	}
	return nil
}
