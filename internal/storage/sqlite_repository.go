package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const taskColumns = `id, title, notes, due_at, completed, alert_repeat, has_alerted, last_alerted_at,
	email_enabled, email_to, sms_enabled, sms_to, alarm_sound, created_at, completed_at`

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Notes, mustTime(in.DueAt), boolInt(in.Completed), in.AlertRepeat,
		boolInt(in.HasAlerted), nullTime(in.LastAlertedAt),
		boolInt(in.EmailEnabled), in.EmailTo, boolInt(in.SMSEnabled), in.SMSTo,
		in.AlarmSound, mustTime(in.CreatedAt), nullTime(in.CompletedAt),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, notes = ?, due_at = ?, completed = ?, alert_repeat = ?, has_alerted = ?,
			last_alerted_at = ?, email_enabled = ?, email_to = ?, sms_enabled = ?, sms_to = ?,
			alarm_sound = ?, completed_at = ?
		WHERE id = ?`,
		in.Title, in.Notes, mustTime(in.DueAt), boolInt(in.Completed), in.AlertRepeat, boolInt(in.HasAlerted),
		nullTime(in.LastAlertedAt), boolInt(in.EmailEnabled), in.EmailTo, boolInt(in.SMSEnabled), in.SMSTo,
		in.AlarmSound, nullTime(in.CompletedAt), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	args := make([]any, 0, 3)
	if filter.Completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, boolInt(*filter.Completed))
	}
	query += ` ORDER BY due_at ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ClearCompletedTasks(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE completed = 1`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const eventColumns = `id, title, notes, start_at, end_at, alert_offset_minutes, alert_repeat, has_alerted,
	last_alerted_at, email_enabled, email_to, sms_enabled, sms_to, alarm_sound, created_at`

func (r *SQLiteRepository) CreateEvent(ctx context.Context, in CalendarEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Notes, mustTime(in.StartAt), mustTime(in.EndAt), in.AlertOffsetMinutes,
		in.AlertRepeat, boolInt(in.HasAlerted), nullTime(in.LastAlertedAt),
		boolInt(in.EmailEnabled), in.EmailTo, boolInt(in.SMSEnabled), in.SMSTo,
		in.AlarmSound, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetEvent(ctx context.Context, id string) (CalendarEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM calendar_events WHERE id = ?`, id)
	item, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CalendarEvent{}, ErrNotFound
		}
		return CalendarEvent{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateEvent(ctx context.Context, in CalendarEvent) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calendar_events
		SET title = ?, notes = ?, start_at = ?, end_at = ?, alert_offset_minutes = ?, alert_repeat = ?,
			has_alerted = ?, last_alerted_at = ?, email_enabled = ?, email_to = ?, sms_enabled = ?,
			sms_to = ?, alarm_sound = ?
		WHERE id = ?`,
		in.Title, in.Notes, mustTime(in.StartAt), mustTime(in.EndAt), in.AlertOffsetMinutes, in.AlertRepeat,
		boolInt(in.HasAlerted), nullTime(in.LastAlertedAt), boolInt(in.EmailEnabled), in.EmailTo,
		boolInt(in.SMSEnabled), in.SMSTo, in.AlarmSound, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListEvents(ctx context.Context, filter EventListFilter) ([]CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if !filter.From.IsZero() {
		clauses = append(clauses, "end_at >= ?")
		args = append(args, mustTime(filter.From))
	}
	if !filter.To.IsZero() {
		clauses = append(clauses, "start_at <= ?")
		args = append(args, mustTime(filter.To))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY start_at ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CalendarEvent, 0)
	for rows.Next() {
		item, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) MarkTasksAlerted(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE tasks SET has_alerted = 1, last_alerted_at = ? WHERE id IN (` + placeholders(len(ids)) + `)`
	args := make([]any, 0, len(ids)+1)
	args = append(args, mustTime(at))
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *SQLiteRepository) MarkEventsAlerted(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE calendar_events SET has_alerted = 1, last_alerted_at = ? WHERE id IN (` + placeholders(len(ids)) + `)`
	args := make([]any, 0, len(ids)+1)
	args = append(args, mustTime(at))
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var due string
	var completed int
	var hasAlerted int
	var lastAlerted sql.NullString
	var emailEnabled int
	var smsEnabled int
	var created string
	var completedAt sql.NullString
	if err := s.Scan(&out.ID, &out.Title, &out.Notes, &due, &completed, &out.AlertRepeat, &hasAlerted, &lastAlerted,
		&emailEnabled, &out.EmailTo, &smsEnabled, &out.SMSTo, &out.AlarmSound, &created, &completedAt); err != nil {
		return Task{}, err
	}
	dueAt, err := parseRequiredTime(due)
	if err != nil {
		return Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Task{}, err
	}
	lastAlertedAt, err := parseNullableTime(lastAlerted)
	if err != nil {
		return Task{}, err
	}
	completedAtTime, err := parseNullableTime(completedAt)
	if err != nil {
		return Task{}, err
	}
	out.DueAt = dueAt
	out.CreatedAt = createdAt
	out.LastAlertedAt = lastAlertedAt
	out.CompletedAt = completedAtTime
	out.Completed = completed != 0
	out.HasAlerted = hasAlerted != 0
	out.EmailEnabled = emailEnabled != 0
	out.SMSEnabled = smsEnabled != 0
	return out, nil
}

func scanEvent(s scanner) (CalendarEvent, error) {
	var out CalendarEvent
	var start string
	var end string
	var hasAlerted int
	var lastAlerted sql.NullString
	var emailEnabled int
	var smsEnabled int
	var created string
	if err := s.Scan(&out.ID, &out.Title, &out.Notes, &start, &end, &out.AlertOffsetMinutes, &out.AlertRepeat,
		&hasAlerted, &lastAlerted, &emailEnabled, &out.EmailTo, &smsEnabled, &out.SMSTo, &out.AlarmSound, &created); err != nil {
		return CalendarEvent{}, err
	}
	startAt, err := parseRequiredTime(start)
	if err != nil {
		return CalendarEvent{}, err
	}
	endAt, err := parseRequiredTime(end)
	if err != nil {
		return CalendarEvent{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return CalendarEvent{}, err
	}
	lastAlertedAt, err := parseNullableTime(lastAlerted)
	if err != nil {
		return CalendarEvent{}, err
	}
	out.StartAt = startAt
	out.EndAt = endAt
	out.CreatedAt = createdAt
	out.LastAlertedAt = lastAlertedAt
	out.HasAlerted = hasAlerted != 0
	out.EmailEnabled = emailEnabled != 0
	out.SMSEnabled = smsEnabled != 0
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
