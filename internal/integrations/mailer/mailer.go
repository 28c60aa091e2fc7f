package mailer

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/shidenryu/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет уведомления о новых заявках: алерт команде и
// автоответ гостю. Все отправки best-effort — сбой почты не должен
// ронять бронирование.
type Mailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	adminTo   string
	log       Logger
}

// New создает новый экземпляр почтового клиента
func New(host string, port int, username, password, fromEmail, adminTo string, log Logger) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
		adminTo:   adminTo,
		log:       log,
	}
}

// NotifyAdmin отправляет команде уведомление о новой заявке
func (m *Mailer) NotifyAdmin(req *domain.BookingRequest) error {
	subject := fmt.Sprintf("New booking request %s — %s %s", req.BookingID, req.Date, req.TimeSlot)

	var b strings.Builder
	fmt.Fprintf(&b, "A new booking request has arrived.\n\n")
	fmt.Fprintf(&b, "Booking ID:  %s\n", req.BookingID)
	fmt.Fprintf(&b, "Date:        %s\n", req.Date)
	fmt.Fprintf(&b, "Time:        %s\n", req.TimeSlot)
	fmt.Fprintf(&b, "Experiences: %s\n", strings.Join(req.Activities, ", "))
	fmt.Fprintf(&b, "Guest:       %s <%s>\n", req.Nickname, req.Email)
	fmt.Fprintf(&b, "Guests:      %d (%s)\n", req.NumberOfGuests, req.GuestSizes)
	fmt.Fprintf(&b, "Room:        #%s\n", req.RoomNumber)
	if req.SpecialRequests != "" {
		fmt.Fprintf(&b, "Requests:    %s\n", req.SpecialRequests)
	}

	return m.send(m.adminTo, subject, b.String())
}

// SendGuestAutoReply отправляет гостю подтверждение приёма заявки
// Письмо явно проговаривает: это заявка, а не подтверждённая бронь
func (m *Mailer) SendGuestAutoReply(req *domain.BookingRequest) error {
	subject := fmt.Sprintf("We received your booking request (%s)", req.BookingID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", req.Nickname)
	fmt.Fprintf(&b, "Thank you for your booking request!\n\n")
	fmt.Fprintf(&b, "Date:        %s\n", req.Date)
	fmt.Fprintf(&b, "Time:        %s\n", req.TimeSlot)
	fmt.Fprintf(&b, "Experiences: %s\n", strings.Join(req.Activities, ", "))
	fmt.Fprintf(&b, "Room:        #%s\n\n", req.RoomNumber)
	fmt.Fprintf(&b, "This is a booking request. Our team will confirm availability and\n")
	fmt.Fprintf(&b, "send a confirmation email within 24 hours.\n\n")
	fmt.Fprintf(&b, "Your reference: %s\n", req.BookingID)

	return m.send(req.Email, subject, b.String())
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("mailer: failed to send %q to %s: %v", subject, to, err)
		return fmt.Errorf("mailer: send failed: %w", err)
	}

	m.log.Info("mailer: sent %q to %s", subject, to)
	return nil
}
