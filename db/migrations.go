package db

import "embed"

// Migrations — схема и начальное наполнение каталога для golang-migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
