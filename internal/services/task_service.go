package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/viremo/viremo-be/internal/models"
)

// ErrEmptyField is returned when a task's title or description is empty or
// whitespace-only after trimming. Nothing is sent to the database in that case.
var ErrEmptyField = errors.New("title and description must not be empty")

// ErrTaskNotFound is returned when a task id does not exist for the caller.
// The service cannot distinguish "does not exist" from "owned by someone
// else"; both surface identically.
var ErrTaskNotFound = errors.New("task not found")

// TaskServiceProvider defines the interface for task services. Every
// operation is scoped to the owning user's id.
type TaskServiceProvider interface {
	ListTasks(userID string) ([]models.Task, error)
	CreateTask(userID, title, description string) (models.Task, error)
	UpdateTask(userID, id, title, description string) error
	DeleteTask(userID, id string) error
}

// TaskService provides business logic for task management.
type TaskService struct {
	db *sql.DB
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *sql.DB) *TaskService {
	return &TaskService{db: db}
}

// ListTasks returns all of the user's tasks, newest first.
func (s *TaskService) ListTasks(userID string) ([]models.Task, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, title, description, created_at FROM tasks WHERE user_id = ? ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Description, &task.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a new task for the user after validating both fields.
func (s *TaskService) CreateTask(userID, title, description string) (models.Task, error) {
	title, description, err := validateTaskFields(title, description)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	stmt, err := s.db.Prepare("INSERT INTO tasks (id, user_id, title, description) VALUES (?, ?, ?, ?)")
	if err != nil {
		return models.Task{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(task.ID, task.UserID, task.Title, task.Description); err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask rewrites the title and description of one of the user's tasks.
// Updating a task that does not belong to the user affects zero rows and is
// reported as not found.
func (s *TaskService) UpdateTask(userID, id, title, description string) error {
	title, description, err := validateTaskFields(title, description)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE tasks SET title = ?, description = ? WHERE id = ? AND user_id = ?",
		title, description, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes one of the user's tasks. Irreversible.
func (s *TaskService) DeleteTask(userID, id string) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// validateTaskFields trims both fields and rejects the write when either
// ends up empty. Validation happens before any database call.
func validateTaskFields(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return "", "", ErrEmptyField
	}
	return title, description, nil
}
