package models

import (
	"strconv"
	"strings"

	"github.com/josephgoksu/taskdeck/types"
)

// ParseID parses a task id as typed by the user. A leading "#" is accepted.
func ParseID(input string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(input), "#"), 10, 32)
	if err != nil {
		return 0, types.NewInvalidInput("invalid task id %q", input)
	}
	return uint32(id), nil
}
