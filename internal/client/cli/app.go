package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/viremo/viremo-be/internal/client/api"
	"github.com/viremo/viremo-be/internal/client/editor"
	"github.com/viremo/viremo-be/internal/client/recall"
	"github.com/viremo/viremo-be/internal/client/session"
	"github.com/viremo/viremo-be/internal/models"
)

// App wires the client workflows together: the API client, the session gate,
// the login recall store, and the task editor.
type App struct {
	api    *api.Client
	gate   *session.Gate
	recall *recall.Store
	editor *editor.Editor

	reader *bufio.Reader
	out    io.Writer

	user  *models.User
	tasks []models.Task
}

// NewApp builds the application around an API client.
func NewApp(client *api.Client, recallStore *recall.Store, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		api:    client,
		gate:   session.New(client),
		recall: recallStore,
		editor: editor.New(client),
		reader: reader,
		out:    out,
	}
}

func (a *App) isLoggedIn() bool { return a.user != nil }

func (a *App) status() string {
	if a.user != nil {
		return a.user.Email
	}
	return "not logged in"
}

// Register prompts for credentials and creates an account.
func (a *App) Register(ctx context.Context) error {
	email, err := promptLine(a.reader, "Email:", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Account created. You can now log in.")
	return nil
}

// Login prompts for credentials, pre-filling the recalled email, and opens a
// session. The email is remembered for the next run only after a successful
// sign-in.
func (a *App) Login(ctx context.Context) error {
	prompt := "Email:"
	recalled := a.recall.Load()
	if recalled != "" {
		prompt = fmt.Sprintf("Email [%s]:", recalled)
	}
	email, err := promptLine(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = recalled
	}

	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}
	a.user = &user

	if err := a.recall.Save(email); err != nil {
		// Best effort; a broken recall file never blocks the session.
		fmt.Fprintln(a.out, "Warning: could not remember email:", err)
	}

	fmt.Fprintln(a.out, "Signed in as", user.Email)
	return a.Dashboard(ctx)
}

// Logout ends the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	_ = a.api.Logout(ctx)
	a.user = nil
	a.tasks = nil
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// ensureSession runs the session gate before a protected view. A failure
// drops the user back to the login screen.
func (a *App) ensureSession(ctx context.Context) bool {
	user, err := a.gate.Ensure(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Session expired. Please log in again.")
		a.user = nil
		a.tasks = nil
		return false
	}
	a.user = &user
	return true
}

// Dashboard renders the activity chart, the motivational message, and the
// task list, all rebuilt from the server.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.ensureSession(ctx) {
		return session.ErrNoSession
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Hello,", a.user.Email)
	if a.user.LastSignInAt != nil {
		fmt.Fprintln(a.out, "Last sign-in:", a.user.LastSignInAt.Local().Format("2006-01-02 15:04"))
	}
	if a.user.AvatarURL != nil {
		fmt.Fprintln(a.out, "Avatar:", *a.user.AvatarURL)
	}

	activity, err := a.api.Activity(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load activity:", err)
	} else {
		fmt.Fprintln(a.out)
		for _, day := range activity.Days {
			fmt.Fprintf(a.out, "  %-9s %s %d\n", day.Day, strings.Repeat("#", day.Logins), day.Logins)
		}
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, activity.Motivation)
	}

	if rec, err := a.api.Recommendation(ctx); err == nil {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, rec.Title)
		fmt.Fprintln(a.out, rec.Body)
	}

	return a.List(ctx)
}

// List re-fetches the task list and prints it. Every mutation goes through
// here afterwards, so the display always reflects the server's last answer.
// When the fetch fails the previously shown list is kept.
func (a *App) List(ctx context.Context) error {
	tasks, err := a.api.Tasks(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load tasks:", err)
		return err
	}
	a.tasks = tasks

	fmt.Fprintln(a.out)
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "You have no tasks yet.")
		return nil
	}

	fmt.Fprintln(a.out, "Your tasks:")
	for i, task := range tasks {
		fmt.Fprintf(a.out, "  %d. %s — %s (%s)\n",
			i+1, task.Title, task.Description, task.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// AddTask opens the create dialog: title first, then description. An empty
// title stops the flow before the description is even asked for.
func (a *App) AddTask(ctx context.Context) error {
	a.editor.OpenCreate()

	title, err := promptLine(a.reader, "Title:", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(a.out, "The title must not be empty.")
		a.editor.Cancel()
		return nil
	}
	a.editor.SetTitle(title)

	description, err := promptLine(a.reader, "Description:", a.out)
	if err != nil {
		return err
	}
	a.editor.SetDescription(description)

	if err := a.editor.Confirm(ctx); err != nil {
		if errors.Is(err, editor.ErrValidation) {
			fmt.Fprintln(a.out, "Fill in both fields!")
			a.editor.Cancel()
			return nil
		}
		fmt.Fprintln(a.out, "Could not save the task:", err)
		return err
	}

	return a.List(ctx)
}

// EditTask opens the edit dialog for a task picked by its list number,
// pre-populated with its current fields. Pressing Enter keeps a field.
func (a *App) EditTask(ctx context.Context) error {
	task, ok, err := a.pickTask("Edit which task (number)?")
	if err != nil || !ok {
		return err
	}

	a.editor.OpenEdit(task)

	title, err := promptLine(a.reader, fmt.Sprintf("Title [%s]:", task.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		a.editor.SetTitle(title)
	}

	description, err := promptLine(a.reader, fmt.Sprintf("Description [%s]:", task.Description), a.out)
	if err != nil {
		return err
	}
	if description != "" {
		a.editor.SetDescription(description)
	}

	if err := a.editor.Confirm(ctx); err != nil {
		if errors.Is(err, editor.ErrValidation) {
			fmt.Fprintln(a.out, "Fill in both fields!")
			a.editor.Cancel()
			return nil
		}
		fmt.Fprintln(a.out, "Could not save the task:", err)
		return err
	}

	return a.List(ctx)
}

// DeleteTask asks which task to delete and requires an explicit confirmation
// before anything is dispatched.
func (a *App) DeleteTask(ctx context.Context) error {
	task, ok, err := a.pickTask("Delete which task (number)?")
	if err != nil || !ok {
		return err
	}

	a.editor.RequestDelete(task.ID)

	answer, err := promptLine(a.reader, fmt.Sprintf("Delete %q? (y/N)", task.Title), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		a.editor.CancelDelete()
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if err := a.editor.ConfirmDelete(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not delete the task:", err)
		return err
	}

	return a.List(ctx)
}

// UploadAvatar sends a local image file as the profile picture.
func (a *App) UploadAvatar(ctx context.Context) error {
	path, err := promptLine(a.reader, "Image file path:", a.out)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	url, err := a.api.UploadAvatar(ctx, path)
	if err != nil {
		fmt.Fprintln(a.out, "Could not upload avatar:", err)
		return err
	}
	fmt.Fprintln(a.out, "Avatar updated:", url)
	return nil
}

// RemoveAvatar deletes the profile picture.
func (a *App) RemoveAvatar(ctx context.Context) error {
	if err := a.api.DeleteAvatar(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not remove avatar:", err)
		return err
	}
	fmt.Fprintln(a.out, "Avatar removed.")
	return nil
}

// pickTask resolves a list number entered by the user against the last
// fetched list. ok=false means the user aborted or the pick was invalid.
func (a *App) pickTask(prompt string) (models.Task, bool, error) {
	if len(a.tasks) == 0 {
		fmt.Fprintln(a.out, "You have no tasks yet.")
		return models.Task{}, false, nil
	}

	answer, err := promptLine(a.reader, prompt, a.out)
	if err != nil {
		return models.Task{}, false, err
	}

	var n int
	if _, err := fmt.Sscanf(answer, "%d", &n); err != nil || n < 1 || n > len(a.tasks) {
		fmt.Fprintln(a.out, "No such task.")
		return models.Task{}, false, nil
	}
	return a.tasks[n-1], true, nil
}
