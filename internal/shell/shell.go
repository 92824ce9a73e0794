package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/TudorHulban/slotledger"
	"go.uber.org/zap"
)

const usage = `commands:
  book <user> <from> <till>
  cancel <user> <from> <till>
  list
  bookings
  free [<from> <till>]
  show
  help
  quit`

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

type Shell struct {
	ledger *slotledger.Ledger
	logger *zap.Logger
	output io.Writer
}

type ParamsNewShell struct {
	Ledger *slotledger.Ledger
	Logger *zap.Logger
	Output io.Writer
}

func NewShell(params *ParamsNewShell) (*Shell, error) {
	if params.Ledger == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewShell",
				Issue: goerrors.ErrNilInput{
					InputName: "Ledger",
				},
			}
	}

	if params.Output == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewShell",
				Issue: goerrors.ErrNilInput{
					InputName: "Output",
				},
			}
	}

	return &Shell{
			ledger: params.Ledger,
			logger: ternary(params.Logger == nil, zap.NewNop(), params.Logger),
			output: params.Output,
		},
		nil
}

// Run executes commands line by line until input ends, quit is read or
// ctx is done. Command failures are printed and do not stop the session.
func (s *Shell) Run(ctx context.Context, input io.Reader) error {
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		if errCtx := ctx.Err(); errCtx != nil {
			return errCtx
		}

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		result, errExecute := s.Execute(ctx, line)
		if errors.Is(errExecute, ErrQuit) {
			return nil
		}

		if errExecute != nil {
			s.logger.Debug(
				"command failed",
				zap.String("line", line),
				zap.Error(errExecute),
			)

			result = "error: " + errExecute.Error()
		}

		if _, errWrite := fmt.Fprintln(s.output, result); errWrite != nil {
			return errWrite
		}
	}

	return scanner.Err()
}

func (s *Shell) Execute(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	command, args := strings.ToLower(fields[0]), fields[1:]

	s.logger.Debug(
		"command",
		zap.String("command", command),
		zap.Strings("args", args),
	)

	switch command {
	case "book":
		params, errParse := parseBooking(command, args)
		if errParse != nil {
			return "", errParse
		}

		booked, errBook := s.ledger.Book(ctx, params)
		if errBook != nil {
			return "", errBook
		}

		return ternary(booked, "ok", "busy"),
			nil

	case "cancel":
		params, errParse := parseBooking(command, args)
		if errParse != nil {
			return "", errParse
		}

		if errCancel := s.ledger.Cancel(ctx, params); errCancel != nil {
			return "", errCancel
		}

		return "ok", nil

	case "list":
		return fmt.Sprint(s.ledger.GetBookedHours()),
			nil

	case "bookings":
		return renderBookings(s.ledger.GetBookings()),
			nil

	case "free":
		return s.free(command, args)

	case "show":
		return strings.TrimSuffix(s.ledger.GetSchedule(), "\n"),
			nil

	case "help":
		return usage, nil

	case "quit", "exit":
		return "", ErrQuit
	}

	return "",
		goerrors.ErrInvalidInput{
			Caller:     "Execute",
			InputName:  "command",
			InputValue: command,
			Issue:      errors.New("unknown command, try help"),
		}
}

func (s *Shell) free(command string, args []string) (string, error) {
	search := slotledger.Interval{
		From: slotledger.HourOpen,
		Till: slotledger.HourClose,
	}

	switch len(args) {
	case 0:

	case 2:
		interval, errParse := parseInterval(command, args)
		if errParse != nil {
			return "", errParse
		}

		search = interval

	default:
		return "", errArgumentCount(command, 2, len(args))
	}

	free, errGet := s.ledger.GetAvailability(search)
	if errGet != nil {
		return "", errGet
	}

	if len(free) == 0 {
		return "(none)", nil
	}

	rendered := make([]string, len(free))
	for ix, interval := range free {
		rendered[ix] = interval.String()
	}

	return strings.Join(rendered, " "),
		nil
}

func renderBookings(bookings []slotledger.Booking) string {
	if len(bookings) == 0 {
		return "(none)"
	}

	var sb strings.Builder

	for ix, booking := range bookings {
		if ix > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(
			fmt.Sprintf(
				"%d %s",

				booking.Hour,
				booking.User,
			),
		)
	}

	return sb.String()
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}
