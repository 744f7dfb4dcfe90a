package normalize

import (
	"errors"
	"fmt"
)

// ErrUnknownTransform is returned for a Kind outside the declared set.
var ErrUnknownTransform = errors.New("unknown transform")

// Kind names one normaliser that may appear in a column's transform chain.
type Kind int

const (
	KindLeadingZero Kind = iota + 1
	KindRemoveFullwidthSpace
	KindRemoveHalfwidthSpace
	KindRemoveAllSpaces
	KindCanonicalWidth
	KindPhone
	KindDate
	KindDateJapanese
	KindRoomNumber
	KindAmount
)

func (k Kind) String() string {
	switch k {
	case KindLeadingZero:
		return "add_leading_zero"
	case KindRemoveFullwidthSpace:
		return "remove_fullwidth_space"
	case KindRemoveHalfwidthSpace:
		return "remove_halfwidth_space"
	case KindRemoveAllSpaces:
		return "remove_all_spaces"
	case KindCanonicalWidth:
		return "hankaku_to_zenkaku"
	case KindPhone:
		return "normalize_phone"
	case KindDate:
		return "format_date"
	case KindDateJapanese:
		return "format_date_japanese"
	case KindRoomNumber:
		return "room_number"
	case KindAmount:
		return "amount"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Apply runs one normaliser over the null-safe form of v.
func Apply(k Kind, v string) (string, error) {
	v = SafeString(v)
	switch k {
	case KindLeadingZero:
		return AddLeadingZero(v), nil
	case KindRemoveFullwidthSpace:
		return RemoveFullwidthSpace(v), nil
	case KindRemoveHalfwidthSpace:
		return RemoveHalfwidthSpace(v), nil
	case KindRemoveAllSpaces:
		return RemoveAllSpaces(v), nil
	case KindCanonicalWidth:
		return CanonicalWidth(v), nil
	case KindPhone:
		return Phone(v), nil
	case KindDate:
		return FormatDate(v), nil
	case KindDateJapanese:
		return FormatDateJapanese(v), nil
	case KindRoomNumber:
		return RoomNumber(v), nil
	case KindAmount:
		return Amount(v), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTransform, k)
	}
}

// ApplyChain runs chain left to right. An empty chain returns v as is.
func ApplyChain(chain []Kind, v string) (string, error) {
	for _, k := range chain {
		var err error
		if v, err = Apply(k, v); err != nil {
			return "", err
		}
	}
	return v, nil
}
