package shell

import (
	"fmt"
	"strconv"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/TudorHulban/slotledger"
)

func errArgumentCount(command string, expected, got int) error {
	return goerrors.ErrInvalidInput{
		Caller:     command,
		InputName:  "arguments",
		InputValue: got,
		Issue: fmt.Errorf(
			"expected %d arguments, got %d",
			expected,
			got,
		),
	}
}

func parseHour(command, name, value string) (int, error) {
	hour, errConv := strconv.Atoi(value)
	if errConv != nil {
		return 0,
			goerrors.ErrInvalidInput{
				Caller:     command,
				InputName:  name,
				InputValue: value,
				Issue:      errConv,
			}
	}

	return hour, nil
}

// parseInterval expects exactly <from> <till>.
func parseInterval(command string, args []string) (slotledger.Interval, error) {
	from, errFrom := parseHour(command, "from", args[0])
	if errFrom != nil {
		return slotledger.Interval{}, errFrom
	}

	till, errTill := parseHour(command, "till", args[1])
	if errTill != nil {
		return slotledger.Interval{}, errTill
	}

	return slotledger.Interval{
			From: from,
			Till: till,
		},
		nil
}

// parseBooking expects <user> <from> <till>.
func parseBooking(command string, args []string) (*slotledger.ParamsBooking, error) {
	if len(args) != 3 {
		return nil,
			errArgumentCount(command, 3, len(args))
	}

	interval, errParse := parseInterval(command, args[1:])
	if errParse != nil {
		return nil, errParse
	}

	return &slotledger.ParamsBooking{
			User:     args[0],
			Interval: interval,
		},
		nil
}
