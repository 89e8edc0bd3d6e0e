package services

import (
	"time"

	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingInput carries the caller-supplied booking fields. The guest is always
// the authenticated caller, never taken from the payload.
type BookingInput struct {
	RoomID       uint
	CheckInDate  time.Time
	CheckOutDate time.Time
	NumGuests    int
	TotalPrice   float64
}

type BookingService struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier notification.Service
}

type BookingServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier notification.Service
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:       opts.DB,
		logger:   l,
		notifier: opts.Notifier,
	}
}

// Create books a room for userID. The overlap check runs inside a transaction
// holding a row lock on the room, so two concurrent requests for the same room
// cannot both pass it.
func (s *BookingService) Create(userID uint, input BookingInput) (models.Booking, error) {
	if !input.CheckInDate.Before(input.CheckOutDate) {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeInvalidDates,
			"Check-out date must be after check-in date.", errors.ErrInvalidDateRange)
	}

	booking := models.Booking{
		RoomID:       input.RoomID,
		UserID:       userID,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		NumGuests:    input.NumGuests,
		TotalPrice:   input.TotalPrice,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, input.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeValidation, "Invalid room ID.", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Could not load room", err)
		}

		var conflicts int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND check_in_date < ? AND check_out_date > ?",
				input.RoomID, input.CheckOutDate, input.CheckInDate).
			Count(&conflicts).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not check room availability", err)
		}
		if conflicts > 0 {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Room is already booked for the requested dates.", errors.ErrBookingOverlap)
		}

		if err := tx.Omit(clause.Associations).Create(&booking).Error; err != nil {
			return err
		}
		booking.Room = &room
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, errors.NewAppError(errors.ErrCodeDBError, "Could not create booking", err)
	}

	s.broadcastCreated(booking)
	return booking, nil
}

func (s *BookingService) broadcastCreated(booking models.Booking) {
	if s.notifier == nil {
		return
	}
	var hotelID uint
	if booking.Room != nil {
		hotelID = booking.Room.HotelID
	}
	event := notification.NewBookingCreatedEvent(
		booking.ID,
		hotelID,
		booking.RoomID,
		booking.CheckInDate.Format(DateLayout),
		booking.CheckOutDate.Format(DateLayout),
		booking.TotalPrice,
	)
	if err := s.notifier.SendMessage(event.Build()); err != nil {
		s.logger.Error("failed to broadcast booking %d: %v", booking.ID, err)
	}
}

// ListByUser returns the caller's bookings, most recently booked first
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Room").Preload("User").
		Where("user_id = ?", userID).
		Order("booked_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list bookings", err)
	}
	return bookings, nil
}

// GetByUser loads one of the caller's bookings. Foreign bookings surface as
// not found, never as forbidden, so their existence leaks nothing.
func (s *BookingService) GetByUser(userID, bookingID uint) (models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Room").Preload("User").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&booking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.Booking{}, errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found", errors.ErrBookingNotFound)
		}
		return models.Booking{}, errors.NewAppError(errors.ErrCodeDBError, "Could not load booking", err)
	}
	return booking, nil
}

// UpdateByUser rewrites the mutable fields of one of the caller's bookings.
// BookedAt and the owning user are immutable.
func (s *BookingService) UpdateByUser(userID, bookingID uint, input BookingInput) (models.Booking, error) {
	booking, err := s.GetByUser(userID, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	booking.RoomID = input.RoomID
	booking.CheckInDate = input.CheckInDate
	booking.CheckOutDate = input.CheckOutDate
	booking.NumGuests = input.NumGuests
	booking.TotalPrice = input.TotalPrice

	return s.saveChecked(booking)
}

// BookingPatch carries the fields of a partial update. Nil fields keep their
// current value.
type BookingPatch struct {
	RoomID       *uint
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	NumGuests    *int
	TotalPrice   *float64
}

// PatchByUser overlays the supplied fields onto one of the caller's bookings
func (s *BookingService) PatchByUser(userID, bookingID uint, patch BookingPatch) (models.Booking, error) {
	booking, err := s.GetByUser(userID, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	if patch.RoomID != nil {
		booking.RoomID = *patch.RoomID
	}
	if patch.CheckInDate != nil {
		booking.CheckInDate = *patch.CheckInDate
	}
	if patch.CheckOutDate != nil {
		booking.CheckOutDate = *patch.CheckOutDate
	}
	if patch.NumGuests != nil {
		booking.NumGuests = *patch.NumGuests
	}
	if patch.TotalPrice != nil {
		booking.TotalPrice = *patch.TotalPrice
	}

	return s.saveChecked(booking)
}

// saveChecked persists a rewritten booking under the same row lock and overlap
// check as Create, skipping the booking's own row in the conflict count.
func (s *BookingService) saveChecked(booking models.Booking) (models.Booking, error) {
	if !booking.CheckInDate.Before(booking.CheckOutDate) {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeInvalidDates,
			"Check-out date must be after check-in date.", errors.ErrInvalidDateRange)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, booking.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeValidation, "Invalid room ID.", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Could not load room", err)
		}

		var conflicts int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND id <> ? AND check_in_date < ? AND check_out_date > ?",
				booking.RoomID, booking.ID, booking.CheckOutDate, booking.CheckInDate).
			Count(&conflicts).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not check room availability", err)
		}
		if conflicts > 0 {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Room is already booked for the requested dates.", errors.ErrBookingOverlap)
		}

		if err := tx.Omit(clause.Associations).Save(&booking).Error; err != nil {
			return err
		}
		booking.Room = &room
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, errors.NewAppError(errors.ErrCodeDBError, "Could not update booking", err)
	}
	return booking, nil
}

// DeleteByUser removes one of the caller's bookings
func (s *BookingService) DeleteByUser(userID, bookingID uint) error {
	booking, err := s.GetByUser(userID, bookingID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&booking).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not delete booking", err)
	}
	return nil
}

// UpcomingForHotel lists bookings on a hotel's rooms. With a non-nil from,
// only stays that have not ended before it are returned (check_out >= from),
// ordered by check-in ascending.
func (s *BookingService) UpcomingForHotel(hotelID uint, from *time.Time) ([]models.Booking, error) {
	query := s.db.Preload("Room").Preload("User").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("rooms.hotel_id = ?", hotelID)
	if from != nil {
		query = query.Where("bookings.check_out_date >= ?", *from)
	}

	var bookings []models.Booking
	if err := query.Order("bookings.check_in_date ASC").Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list hotel bookings", err)
	}
	return bookings, nil
}
