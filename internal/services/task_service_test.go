package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupTaskMock(t *testing.T) (*TaskService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	service := NewTaskService(db)
	cleanup := func() { db.Close() }
	return service, mock, cleanup
}

func TestListTasks(t *testing.T) {
	service, mock, cleanup := setupTaskMock(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "created_at"}).
		AddRow("t2", "u1", "Newer", "Second task", now).
		AddRow("t1", "u1", "Older", "First task", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, title, description, created_at FROM tasks WHERE user_id = ? ORDER BY created_at DESC")).
		WithArgs("u1").
		WillReturnRows(rows)

	tasks, err := service.ListTasks("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t2" || tasks[1].ID != "t1" {
		t.Errorf("order not preserved: %s, %s", tasks[0].ID, tasks[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateTask_Success(t *testing.T) {
	service, mock, cleanup := setupTaskMock(t)
	defer cleanup()

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO tasks (id, user_id, title, description) VALUES (?, ?, ?, ?)")).
		ExpectExec().
		WithArgs(sqlmock.AnyArg(), "u1", "Buy milk", "Two liters").
		WillReturnResult(sqlmock.NewResult(1, 1))

	task, err := service.CreateTask("u1", "  Buy milk  ", "Two liters")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "Buy milk" {
		t.Errorf("title not trimmed: %q", task.Title)
	}
	if task.UserID != "u1" {
		t.Errorf("task owner = %q; want u1", task.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateTask_ValidationBlocksDatabase(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"empty title", "", "something"},
		{"empty description", "Buy milk", ""},
		{"whitespace title", "   ", "something"},
		{"whitespace description", "Buy milk", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock, cleanup := setupTaskMock(t)
			defer cleanup()

			// No Expect* set up: any database call fails the test.
			_, err := service.CreateTask("u1", tt.title, tt.description)
			if !errors.Is(err, ErrEmptyField) {
				t.Fatalf("error = %v; want ErrEmptyField", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("database was touched: %v", err)
			}
		})
	}
}

func TestUpdateTask_Success(t *testing.T) {
	service, mock, cleanup := setupTaskMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks SET title = ?, description = ? WHERE id = ? AND user_id = ?")).
		WithArgs("New title", "New description", "t1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := service.UpdateTask("u1", "t1", "New title", "New description"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdateTask_NotOwnedOrMissing(t *testing.T) {
	service, mock, cleanup := setupTaskMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks SET title = ?, description = ? WHERE id = ? AND user_id = ?")).
		WithArgs("Title", "Description", "t42", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := service.UpdateTask("u1", "t42", "Title", "Description")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("error = %v; want ErrTaskNotFound", err)
	}
}

func TestUpdateTask_ValidationBlocksDatabase(t *testing.T) {
	service, mock, cleanup := setupTaskMock(t)
	defer cleanup()

	err := service.UpdateTask("u1", "t1", "Title", "   ")
	if !errors.Is(err, ErrEmptyField) {
		t.Fatalf("error = %v; want ErrEmptyField", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("database was touched: %v", err)
	}
}

func TestDeleteTask_Success(t *testing.T) {
	service, mock, cleanup := setupTaskMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE id = ? AND user_id = ?")).
		WithArgs("t1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := service.DeleteTask("u1", "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTask_NotOwnedOrMissing(t *testing.T) {
	service, mock, cleanup := setupTaskMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE id = ? AND user_id = ?")).
		WithArgs("t42", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := service.DeleteTask("u1", "t42")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("error = %v; want ErrTaskNotFound", err)
	}
}
