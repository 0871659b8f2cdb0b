package store

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/securevault/go-secure-vault/models"
)

const (
	createUser = `INSERT INTO users (user_id, email, password_hash, name)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE user_id = $1;`

	createCategory = `INSERT INTO categories (category_id, user_id, name, icon, color)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING category_id, user_id, name, icon, color, created_at, updated_at;`

	getCategoryByID = `SELECT category_id, user_id, name, icon, color, created_at, updated_at
    FROM categories
    WHERE category_id = $1;`

	getUserCategories = `SELECT category_id, user_id, name, icon, color, created_at, updated_at
    FROM categories
    WHERE user_id = $1
    ORDER BY created_at;`

	updateCategory = `UPDATE categories
    SET name = $1, icon = $2, color = $3, updated_at = NOW()
    WHERE category_id = $4 AND user_id = $5
    RETURNING category_id, user_id, name, icon, color, created_at, updated_at;`

	deleteCategory = `DELETE FROM categories
    WHERE category_id = $1 AND user_id = $2;`

	createCredential = `INSERT INTO credentials (
        credential_id,
        user_id,
        category_id,
        title,
        description,
        website,
        username,
        customer_id,
        notes,
        encrypted_data
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING credential_id, user_id, category_id, title, description, website, username, customer_id, notes, encrypted_data, created_at, updated_at;`

	getCredentialByID = `SELECT credential_id, user_id, category_id, title, description, website, username, customer_id, notes, encrypted_data, created_at, updated_at
    FROM credentials
    WHERE credential_id = $1;`

	deleteCredential = `DELETE FROM credentials
    WHERE credential_id = $1 AND user_id = $2;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// credentialColumns is the canonical column order shared by the credential
// SELECT and RETURNING clauses. Scan destinations must follow this order.
var credentialColumns = []string{
	"credential_id",
	"user_id",
	"category_id",
	"title",
	"description",
	"website",
	"username",
	"customer_id",
	"notes",
	"encrypted_data",
	"created_at",
	"updated_at",
}

// buildSelectCredentialsQuery builds the listing query for a vault owner.
// The result is always scoped to userID; a non-nil categoryID narrows it to
// a single category.
func buildSelectCredentialsQuery(userID string, categoryID *string) (string, []any, error) {
	builder := psql.
		Select(credentialColumns...).
		From("credentials").
		Where(squirrel.Eq{"user_id": userID})

	if categoryID != nil {
		builder = builder.Where(squirrel.Eq{"category_id": *categoryID})
	}

	query, args, err := builder.OrderBy("title").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateCredentialQuery builds a dynamic UPDATE for a partial credential
// update. Only non-nil fields produce SET clauses; updated_at is always
// bumped. A non-nil envelope replaces the stored encrypted payload. The WHERE
// clause pins both credential_id and user_id, and a RETURNING clause hands
// back the full row in [credentialColumns] order.
func buildUpdateCredentialQuery(credentialID, userID string, update models.CredentialUpdate, encrypted *models.Envelope) (string, []any, error) {
	builder := psql.
		Update("credentials").
		Set("updated_at", squirrel.Expr("NOW()"))

	if update.CategoryID != nil {
		builder = builder.Set("category_id", *update.CategoryID)
	}
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Website != nil {
		builder = builder.Set("website", *update.Website)
	}
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.CustomerID != nil {
		builder = builder.Set("customer_id", *update.CustomerID)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	if encrypted != nil {
		builder = builder.Set("encrypted_data", string(*encrypted))
	}

	query, args, err := builder.
		Where(squirrel.Eq{"credential_id": credentialID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(credentialColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
