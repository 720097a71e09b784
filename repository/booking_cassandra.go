package repository

import (
	"encoding/json"
	"fmt"

	"github.com/gocql/gocql"
	"github.com/sirupsen/logrus"

	"stayease-backend/domain"
)

// CassandraBookingRepo keeps bookings keyed by confirmation number with the
// entity snapshot and form payloads denormalized into the row.
type CassandraBookingRepo struct {
	session *gocql.Session
	logger  *logrus.Logger
}

// NewCassandraBookingRepo reads db configuration and creates the keyspace if
// it does not exist yet, then connects to it.
func NewCassandraBookingRepo(db string, logger *logrus.Logger) (*CassandraBookingRepo, error) {
	cluster := gocql.NewCluster(db)
	cluster.Keyspace = "system"
	session, err := cluster.CreateSession()
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	err = session.Query(
		fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
					WITH replication = {
						'class' : 'SimpleStrategy',
						'replication_factor' : %d
					}`, "stayease", 1)).Exec()
	if err != nil {
		logger.Error(err)
	}
	session.Close()

	cluster.Keyspace = "stayease"
	cluster.Consistency = gocql.One
	session, err = cluster.CreateSession()
	if err != nil {
		logger.Error(err)
		return nil, err
	}

	return &CassandraBookingRepo{
		session: session,
		logger:  logger,
	}, nil
}

func (r *CassandraBookingRepo) CloseSession() {
	r.session.Close()
}

func (r *CassandraBookingRepo) CreateTable() {
	err := r.session.Query(
		`CREATE TABLE IF NOT EXISTS bookings_by_confirmation (
        confirmation_number text,
        booking_id text,
        booking_type text,
        owner_id text,
        entity_snapshot text,
        check_in_date timestamp,
        check_out_date timestamp,
        scheduled_date timestamp,
        scheduled_time text,
        guests int,
        guest_info text,
        payment text,
        pricing text,
        status text,
        booking_date timestamp,
        PRIMARY KEY (confirmation_number)
    );`,
	).Exec()
	if err != nil {
		r.logger.Error(err)
	}

	err = r.session.Query(
		`CREATE INDEX IF NOT EXISTS idx_owner_id ON bookings_by_confirmation (owner_id);`,
	).Exec()
	if err != nil {
		r.logger.Error(err)
	}
}

func (r *CassandraBookingRepo) Insert(booking *domain.Booking) error {
	entity, err := json.Marshal(booking.Entity)
	if err != nil {
		return err
	}
	guestInfo, err := json.Marshal(booking.GuestInfo)
	if err != nil {
		return err
	}
	payment, err := json.Marshal(booking.Payment)
	if err != nil {
		return err
	}
	pricing, err := json.Marshal(booking.Pricing)
	if err != nil {
		return err
	}

	err = r.session.Query(
		`INSERT INTO bookings_by_confirmation
         (confirmation_number, booking_id, booking_type, owner_id, entity_snapshot,
          check_in_date, check_out_date, scheduled_date, scheduled_time,
          guests, guest_info, payment, pricing, status, booking_date)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		booking.ConfirmationNumber,
		booking.ID,
		string(booking.Type),
		booking.OwnerUserID,
		string(entity),
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.ScheduledDate,
		booking.ScheduledTime,
		booking.Guests,
		string(guestInfo),
		string(payment),
		string(pricing),
		string(booking.Status),
		booking.BookingDate,
	).Exec()
	if err != nil {
		r.logger.Error(err)
		return err
	}
	return nil
}

const bookingColumns = `confirmation_number, booking_id, booking_type, owner_id, entity_snapshot,
      check_in_date, check_out_date, scheduled_date, scheduled_time,
      guests, guest_info, payment, pricing, status, booking_date`

func (r *CassandraBookingRepo) scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var bookingType, status string
	var entity, guestInfo, payment, pricing string

	err := scan(&b.ConfirmationNumber, &b.ID, &bookingType, &b.OwnerUserID, &entity,
		&b.CheckInDate, &b.CheckOutDate, &b.ScheduledDate, &b.ScheduledTime,
		&b.Guests, &guestInfo, &payment, &pricing, &status, &b.BookingDate)
	if err != nil {
		return nil, err
	}

	b.Type = domain.EntityKind(bookingType)
	b.Status = domain.BookingStatus(status)
	if err := json.Unmarshal([]byte(entity), &b.Entity); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(guestInfo), &b.GuestInfo); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payment), &b.Payment); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(pricing), &b.Pricing); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *CassandraBookingRepo) GetByConfirmationNumber(confirmationNumber string) (*domain.Booking, error) {
	query := r.session.Query(
		`SELECT `+bookingColumns+` FROM bookings_by_confirmation WHERE confirmation_number = ?`,
		confirmationNumber)

	booking, err := r.scanBooking(query.Scan)
	if err != nil {
		if err == gocql.ErrNotFound {
			return nil, domain.ErrNotFound()
		}
		r.logger.Error(err)
		return nil, err
	}
	return booking, nil
}

func (r *CassandraBookingRepo) listWhere(where string, bind ...interface{}) (domain.Bookings, error) {
	scanner := r.session.Query(
		`SELECT `+bookingColumns+` FROM bookings_by_confirmation `+where, bind...).
		Iter().Scanner()

	var bookings domain.Bookings
	for scanner.Next() {
		booking, err := r.scanBooking(scanner.Scan)
		if err != nil {
			r.logger.Error(err)
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := scanner.Err(); err != nil {
		r.logger.Error(err)
		return nil, err
	}
	return bookings, nil
}

func (r *CassandraBookingRepo) ListByOwner(ownerUserID string) (domain.Bookings, error) {
	return r.listWhere(`WHERE owner_id = ?`, ownerUserID)
}

func (r *CassandraBookingRepo) ListUnowned() (domain.Bookings, error) {
	return r.listWhere(`WHERE owner_id = '' ALLOW FILTERING`)
}

func (r *CassandraBookingRepo) UpdateStatus(confirmationNumber string, status domain.BookingStatus) error {
	if _, err := r.GetByConfirmationNumber(confirmationNumber); err != nil {
		return err
	}
	err := r.session.Query(
		`UPDATE bookings_by_confirmation SET status = ? WHERE confirmation_number = ?`,
		string(status), confirmationNumber,
	).Exec()
	if err != nil {
		r.logger.Error(err)
	}
	return err
}

func (r *CassandraBookingRepo) AssignOwner(confirmationNumber string, ownerUserID string) error {
	if _, err := r.GetByConfirmationNumber(confirmationNumber); err != nil {
		return err
	}
	err := r.session.Query(
		`UPDATE bookings_by_confirmation SET owner_id = ? WHERE confirmation_number = ?`,
		ownerUserID, confirmationNumber,
	).Exec()
	if err != nil {
		r.logger.Error(err)
	}
	return err
}

func (r *CassandraBookingRepo) ConfirmationNumberExists(confirmationNumber string) (bool, error) {
	var count int
	err := r.session.Query(
		`SELECT COUNT(*) FROM bookings_by_confirmation WHERE confirmation_number = ?`,
		confirmationNumber,
	).Scan(&count)
	if err != nil {
		r.logger.Error(err)
		return false, err
	}
	return count > 0, nil
}
