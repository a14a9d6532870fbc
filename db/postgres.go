package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"safetypath/models"

	"github.com/lib/pq"
)

// openPostgres opens and pings a Postgres connection.
func openPostgres(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(databaseURL string) (*PostgresUserRepository, error) {
	conn, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}
	return &PostgresUserRepository{db: conn}, nil
}

func (r *PostgresUserRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresUserRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var persona, region sql.NullString
	var progressRaw []byte

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &persona, &region, &progressRaw, pq.Array(&user.Skills))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.Persona = persona.String
	user.Region = region.String
	if len(progressRaw) > 0 {
		if err := json.Unmarshal(progressRaw, &user.Progress); err != nil {
			return nil, fmt.Errorf("failed to decode user progress: %w", err)
		}
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByID(id int) (*models.User, error) {
	query := `
		SELECT id, username, password, persona, region, progress, skills
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRow(query, id))
}

func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, password, persona, region, progress, skills
		FROM users
		WHERE username = $1`

	return r.scanUser(r.db.QueryRow(query, username))
}

func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	progressRaw, err := json.Marshal(user.Progress)
	if err != nil {
		return fmt.Errorf("failed to encode user progress: %w", err)
	}

	query := `
		INSERT INTO users (username, password, persona, region, progress, skills)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	row := r.db.QueryRow(query, user.Username, user.PasswordHash, user.Persona, user.Region, progressRaw, pq.Array(user.Skills))
	if err := row.Scan(&user.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) UpdateUser(id int, updates map[string]any) error {
	for field, value := range updates {
		var query string
		var arg any

		switch field {
		case "persona":
			query = `UPDATE users SET persona = $1 WHERE id = $2`
			arg = value
		case "region":
			query = `UPDATE users SET region = $1 WHERE id = $2`
			arg = value
		case "skills":
			skills, ok := value.([]string)
			if !ok {
				return fmt.Errorf("wrong value type for user field: skills")
			}
			query = `UPDATE users SET skills = $1 WHERE id = $2`
			arg = pq.Array(skills)
		case "progress":
			progressRaw, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("failed to encode user progress: %w", err)
			}
			query = `UPDATE users SET progress = $1 WHERE id = $2`
			arg = progressRaw
		default:
			return fmt.Errorf("unknown user field: %s", field)
		}

		result, err := r.db.Exec(query, arg, id)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
	}

	return nil
}

type PostgresPathwayRepository struct {
	db *sql.DB
}

func NewPostgresPathwayRepository(databaseURL string) (*PostgresPathwayRepository, error) {
	conn, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}
	return &PostgresPathwayRepository{db: conn}, nil
}

func (r *PostgresPathwayRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresPathwayRepository) queryPathways(query string, args ...any) ([]models.Pathway, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pathways: %w", err)
	}
	defer rows.Close()

	var pathways []models.Pathway
	for rows.Next() {
		pathway, err := scanPathway(rows)
		if err != nil {
			return nil, err
		}
		pathways = append(pathways, *pathway)
	}
	return pathways, rows.Err()
}

func scanPathway(rows *sql.Rows) (*models.Pathway, error) {
	pathway := &models.Pathway{}
	var persona sql.NullString
	var stepsRaw, dependenciesRaw, resourcesRaw, criteriaRaw []byte

	err := rows.Scan(&pathway.ID, &pathway.Title, &pathway.Description, &pathway.Difficulty,
		&pathway.Duration, &pathway.Category, &persona, &stepsRaw, &dependenciesRaw,
		pq.Array(&pathway.SkillsRequired), pq.Array(&pathway.SkillsGained), &resourcesRaw, &criteriaRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to scan pathway: %w", err)
	}

	pathway.Persona = persona.String
	if len(stepsRaw) > 0 {
		if err := json.Unmarshal(stepsRaw, &pathway.Steps); err != nil {
			return nil, fmt.Errorf("failed to decode pathway steps: %w", err)
		}
	}
	if len(dependenciesRaw) > 0 {
		if err := json.Unmarshal(dependenciesRaw, &pathway.Dependencies); err != nil {
			return nil, fmt.Errorf("failed to decode pathway dependencies: %w", err)
		}
	}
	if len(resourcesRaw) > 0 {
		if err := json.Unmarshal(resourcesRaw, &pathway.Resources); err != nil {
			return nil, fmt.Errorf("failed to decode pathway resources: %w", err)
		}
	}
	if len(criteriaRaw) > 0 {
		if err := json.Unmarshal(criteriaRaw, &pathway.CompletionCriteria); err != nil {
			return nil, fmt.Errorf("failed to decode pathway completion criteria: %w", err)
		}
	}
	return pathway, nil
}

const pathwayColumns = `id, title, description, difficulty, duration, category, persona,
	steps, dependencies, skills_required, skills_gained, resources, completion_criteria`

func (r *PostgresPathwayRepository) GetPathways() ([]models.Pathway, error) {
	query := `SELECT ` + pathwayColumns + ` FROM pathways ORDER BY id`
	return r.queryPathways(query)
}

func (r *PostgresPathwayRepository) GetPathwaysByPersona(persona string) ([]models.Pathway, error) {
	query := `SELECT ` + pathwayColumns + ` FROM pathways WHERE persona = $1 ORDER BY id`
	return r.queryPathways(query, persona)
}

func (r *PostgresPathwayRepository) GetPathwayByID(id int) (*models.Pathway, error) {
	query := `SELECT ` + pathwayColumns + ` FROM pathways WHERE id = $1`
	pathways, err := r.queryPathways(query, id)
	if err != nil {
		return nil, err
	}
	if len(pathways) == 0 {
		return nil, ErrNotFound
	}
	return &pathways[0], nil
}

type PostgresToolRepository struct {
	db *sql.DB
}

func NewPostgresToolRepository(databaseURL string) (*PostgresToolRepository, error) {
	conn, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}
	return &PostgresToolRepository{db: conn}, nil
}

func (r *PostgresToolRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresToolRepository) GetTools() ([]models.Tool, error) {
	query := `SELECT id, name, type, description, template FROM tools ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tools: %w", err)
	}
	defer rows.Close()

	var tools []models.Tool
	for rows.Next() {
		tool := models.Tool{}
		var templateRaw []byte
		if err := rows.Scan(&tool.ID, &tool.Name, &tool.Type, &tool.Description, &templateRaw); err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		if len(templateRaw) > 0 {
			if err := json.Unmarshal(templateRaw, &tool.Template); err != nil {
				return nil, fmt.Errorf("failed to decode tool template: %w", err)
			}
		}
		tools = append(tools, tool)
	}
	return tools, rows.Err()
}

type PostgresResourceRepository struct {
	db *sql.DB
}

func NewPostgresResourceRepository(databaseURL string) (*PostgresResourceRepository, error) {
	conn, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}
	return &PostgresResourceRepository{db: conn}, nil
}

func (r *PostgresResourceRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresResourceRepository) queryResources(query string, args ...any) ([]models.Resource, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		resource := models.Resource{}
		var description, provider, difficulty sql.NullString
		var pathwayID sql.NullInt64

		err := rows.Scan(&resource.ID, &resource.Title, &resource.Type, &resource.URL,
			&description, &provider, pq.Array(&resource.Tags), &difficulty, &pathwayID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}

		resource.Description = description.String
		resource.Provider = provider.String
		resource.Difficulty = difficulty.String
		resource.PathwayID = int(pathwayID.Int64)
		resources = append(resources, resource)
	}
	return resources, rows.Err()
}

func (r *PostgresResourceRepository) GetResources() ([]models.Resource, error) {
	query := `
		SELECT id, title, type, url, description, provider, tags, difficulty, pathway_id
		FROM resources ORDER BY id`
	return r.queryResources(query)
}

func (r *PostgresResourceRepository) GetResourcesByPathway(pathwayID int) ([]models.Resource, error) {
	query := `
		SELECT id, title, type, url, description, provider, tags, difficulty, pathway_id
		FROM resources WHERE pathway_id = $1 ORDER BY id`
	return r.queryResources(query, pathwayID)
}
