package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

const bookingColumns = `id::text, COALESCE("recurringId", ''), name, "ownerId", "tableTennis", badminton, "startTime", "endTime", "isActive", "createdAt", "updatedAt"`

func (r *Repository) GetActiveBookings(ctx context.Context) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM "facility-booking".booking
            WHERE "isActive" AND "endTime" >= $1;
        `

	rows, err := r.conn.Query(ctx, sql, time.Now())

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetActiveBookingsInRange(ctx context.Context, from, to time.Time) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM "facility-booking".booking
            WHERE "isActive" AND "startTime" < $2 AND "endTime" > $1
            ORDER BY "startTime";
        `

	rows, err := r.conn.Query(ctx, sql, from, to)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings in range: %w", err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM "facility-booking".booking
            WHERE id=$1;
        `

	booking, err := scanBooking(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsByIDs(ctx context.Context, ids []string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM "facility-booking".booking
            WHERE id = ANY($1);
        `

	rows, err := r.conn.Query(ctx, sql, ids)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings by ids: %w", err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetBookingsPerOwner(ctx context.Context, ownerID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM "facility-booking".booking
            WHERE "ownerId"=$1
            ORDER BY "startTime";
        `

	rows, err := r.conn.Query(ctx, sql, ownerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for owner '%v': %w", ownerID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	inserted, err := insertOne(ctx, r.conn, booking)

	if isOverlapRejection(err) {
		return Booking{}, ErrTimeNotAvailable
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return inserted, nil
}

// InsertBookings persists the whole batch in one transaction; either every
// booking commits or none does.
func (r *Repository) InsertBookings(ctx context.Context, bookings []Booking) ([]Booking, error) {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	inserted := make([]Booking, 0, len(bookings))

	for _, booking := range bookings {
		b, err := insertOne(ctx, tx, booking)

		if isOverlapRejection(err) {
			return nil, ErrTimeNotAvailable
		}

		if err != nil {
			return nil, fmt.Errorf("failed to insert booking: %w", err)
		}

		inserted = append(inserted, b)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit bookings: %w", err)
	}

	return inserted, nil
}

// UpdateBookings persists all of them in one transaction, so a connected
// update commits all or nothing.
func (r *Repository) UpdateBookings(ctx context.Context, bookings []Booking) error {
	sql := `
            UPDATE "facility-booking".booking
            SET
                name=$1,
                "tableTennis"=$2,
                badminton=$3,
                "startTime"=$4,
                "endTime"=$5,
                "isActive"=$6,
                "updatedAt"=$7
            WHERE id=$8;
        `

	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	for _, booking := range bookings {
		tag, err := tx.Exec(ctx, sql,
			booking.Name,
			booking.Resources.TableTennis(),
			booking.Resources.Badminton(),
			booking.Time.Start(),
			booking.Time.End(),
			booking.IsActive,
			booking.UpdatedAt,
			booking.ID,
		)

		if isOverlapRejection(err) {
			return ErrTimeNotAvailable
		}

		if err != nil {
			return fmt.Errorf("failed to update booking '%v': %w", booking.ID, err)
		}

		if tag.RowsAffected() == 0 {
			return ErrBookingNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit booking updates: %w", err)
	}

	return nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertOne(ctx context.Context, q queryRower, booking Booking) (Booking, error) {
	sql := `
            INSERT INTO "facility-booking".booking(
            "recurringId", name, "ownerId", "tableTennis", badminton, "startTime", "endTime", "isActive", "createdAt", "updatedAt")
            VALUES (NULLIF($1, '')::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING id::text;
        `

	err := q.QueryRow(ctx, sql,
		booking.RecurringID,
		booking.Name,
		booking.OwnerID,
		booking.Resources.TableTennis(),
		booking.Resources.Badminton(),
		booking.Time.Start(),
		booking.Time.End(),
		booking.IsActive,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)

	if err != nil {
		return Booking{}, err
	}

	return booking, nil
}

// isOverlapRejection matches the exclusion constraints guarding the
// booking table. A losing concurrent writer trips SQLSTATE 23P01 and is
// surfaced as a plain availability failure.
func isOverlapRejection(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	var tableTennis, badminton bool
	var start, end time.Time

	err := row.Scan(
		&b.ID,
		&b.RecurringID,
		&b.Name,
		&b.OwnerID,
		&tableTennis,
		&badminton,
		&start,
		&end,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		return Booking{}, err
	}

	// Stored rows were validated on the way in; rebuild the value objects
	// directly.
	b.Time = TimeSpan{start: start, end: end}
	b.Resources = ResourceSet{tableTennis: tableTennis, badminton: badminton}

	return b, nil
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}
