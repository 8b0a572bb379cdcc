package migration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// Generator writes goose-format SQL migration files.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateSchemaBootstrap writes the initial schema migration covering the core
// tables. Uses a fixed version so existing deployments never re-run it.
func (g *Generator) CreateSchemaBootstrap() error {
	g.logger.Infow("creating schema bootstrap migration")

	fileName := "00001_create_core_tables.sql"
	filePath := filepath.Join(g.scriptsPath, fileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("bootstrap migration already exists: %s", filePath)
	}

	if err := g.writeFile(filePath, schemaBootstrapSQL); err != nil {
		return fmt.Errorf("failed to create bootstrap migration: %w", err)
	}

	g.logger.Infow("schema bootstrap migration created successfully",
		"file", filePath)

	return nil
}

// writeFile writes content to a file
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

const schemaBootstrapSQL = `-- +goose Up
CREATE TABLE IF NOT EXISTS tickets (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    number VARCHAR(50) NOT NULL UNIQUE,
    title VARCHAR(200) NOT NULL,
    description TEXT,
    category_code VARCHAR(50),
    skill_group_id BIGINT UNSIGNED NULL,
    priority VARCHAR(20) NOT NULL,
    status VARCHAR(20) NOT NULL,
    site_id BIGINT UNSIGNED NOT NULL,
    raised_by BIGINT UNSIGNED NOT NULL,
    assigned_to BIGINT UNSIGNED NULL,
    assigned_at BIGINT NULL,
    sla_hours INT NOT NULL DEFAULT 0,
    sla_deadline BIGINT NULL,
    sla_started TINYINT(1) NOT NULL DEFAULT 0,
    work_paused TINYINT(1) NOT NULL DEFAULT 0,
    work_paused_at BIGINT NULL,
    total_paused_minutes INT NOT NULL DEFAULT 0,
    is_vague TINYINT(1) NOT NULL DEFAULT 0,
    is_internal TINYINT(1) NOT NULL DEFAULT 0,
    floor_number INT NULL,
    location VARCHAR(100),
    import_batch_id VARCHAR(36) NULL,
    version INT NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    closed_at BIGINT NULL,
    INDEX idx_tickets_status (status),
    INDEX idx_tickets_site_id (site_id),
    INDEX idx_tickets_assigned_to (assigned_to),
    INDEX idx_tickets_sla_deadline (sla_deadline),
    INDEX idx_tickets_import_batch_id (import_batch_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS ticket_import_batches (
    id VARCHAR(36) PRIMARY KEY,
    filename VARCHAR(255) NOT NULL,
    total_rows INT NOT NULL DEFAULT 0,
    valid_rows INT NOT NULL DEFAULT 0,
    error_rows INT NOT NULL DEFAULT 0,
    status VARCHAR(20) NOT NULL,
    created_at BIGINT NOT NULL,
    completed_at BIGINT NULL,
    INDEX idx_ticket_import_batches_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS categories (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    code VARCHAR(50) NOT NULL UNIQUE,
    name VARCHAR(100) NOT NULL,
    skill_group_id BIGINT UNSIGNED NOT NULL,
    default_priority VARCHAR(20) NOT NULL,
    sla_hours INT NOT NULL DEFAULT 24,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS skill_groups (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    code VARCHAR(50) NOT NULL UNIQUE,
    name VARCHAR(100) NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS site_memberships (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    user_id BIGINT UNSIGNED NOT NULL,
    site_id BIGINT UNSIGNED NOT NULL,
    role VARCHAR(30) NOT NULL,
    is_active TINYINT(1) NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    UNIQUE KEY uq_site_memberships_user_site (user_id, site_id),
    INDEX idx_site_memberships_site_id (site_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS resolver_availability (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    user_id BIGINT UNSIGNED NOT NULL,
    skill_group_id BIGINT UNSIGNED NOT NULL,
    site_id BIGINT UNSIGNED NOT NULL,
    is_available TINYINT(1) NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    UNIQUE KEY uq_resolver_availability (user_id, skill_group_id, site_id),
    INDEX idx_resolver_availability_lookup (skill_group_id, site_id, is_available)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS users (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    display_name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS notifications (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    user_id BIGINT UNSIGNED NOT NULL,
    site_id BIGINT UNSIGNED NOT NULL,
    type VARCHAR(30) NOT NULL,
    title VARCHAR(200) NOT NULL,
    message TEXT,
    deep_link VARCHAR(255),
    related_ticket_id BIGINT UNSIGNED NULL,
    related_booking_id BIGINT UNSIGNED NULL,
    is_read TINYINT(1) NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_notifications_user_read (user_id, is_read),
    INDEX idx_notifications_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS push_endpoints (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    user_id BIGINT UNSIGNED NOT NULL,
    token VARCHAR(500),
    endpoint_url VARCHAR(500) NOT NULL,
    p256dh_key VARCHAR(255),
    auth_key VARCHAR(255),
    browser_fingerprint VARCHAR(100),
    is_active TINYINT(1) NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_push_endpoints_user_active (user_id, is_active),
    INDEX idx_push_endpoints_fingerprint (browser_fingerprint),
    INDEX idx_push_endpoints_updated_at (updated_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS notification_delivery_records (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    notification_id BIGINT UNSIGNED NOT NULL,
    endpoint_id BIGINT UNSIGNED NOT NULL,
    status VARCHAR(20) NOT NULL,
    failure_reason VARCHAR(500),
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_delivery_records_notification_id (notification_id),
    INDEX idx_delivery_records_endpoint_id (endpoint_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS room_bookings (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    room_name VARCHAR(100) NOT NULL,
    site_id BIGINT UNSIGNED NOT NULL,
    booked_by BIGINT UNSIGNED NOT NULL,
    starts_at BIGINT NOT NULL,
    ends_at BIGINT NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_room_bookings_site_id (site_id),
    INDEX idx_room_bookings_starts_at (starts_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

-- +goose Down
DROP TABLE IF EXISTS room_bookings;
DROP TABLE IF EXISTS notification_delivery_records;
DROP TABLE IF EXISTS push_endpoints;
DROP TABLE IF EXISTS notifications;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS resolver_availability;
DROP TABLE IF EXISTS site_memberships;
DROP TABLE IF EXISTS skill_groups;
DROP TABLE IF EXISTS categories;
DROP TABLE IF EXISTS ticket_import_batches;
DROP TABLE IF EXISTS tickets;
`
