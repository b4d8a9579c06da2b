package purchase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"purchase-approval/internal/domain/identity"
)

const MaxItemNameLength = 200

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ApproverEmail struct {
	value string
}

func NewApproverEmail(s string) (ApproverEmail, error) {
	v := identity.NormalizeEmail(s)
	if !emailPattern.MatchString(v) {
		return ApproverEmail{}, ErrInvalidApproverEmail
	}
	return ApproverEmail{value: v}, nil
}

func (e ApproverEmail) String() string { return e.value }

type ItemName struct {
	value string
}

func NewItemName(s string) (ItemName, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return ItemName{}, ErrEmptyItemName
	}
	if utf8.RuneCountInString(v) > MaxItemNameLength {
		return ItemName{}, ErrItemNameTooLong
	}
	return ItemName{value: v}, nil
}

func (n ItemName) String() string { return n.value }
