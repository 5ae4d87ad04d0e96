package ordersvc

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrUserNotFound          ErrCode = "USER_NOT_FOUND"
	ErrBookNotFound          ErrCode = "BOOK_NOT_FOUND"
	ErrOrderNotFound         ErrCode = "ORDER_NOT_FOUND"
	ErrLineItemNotFound      ErrCode = "LINE_ITEM_NOT_FOUND"
	ErrUserBlocked           ErrCode = "USER_BLOCKED"
	ErrRentalLimit           ErrCode = "RENTAL_LIMIT"
	ErrBookUnavailable       ErrCode = "BOOK_UNAVAILABLE"
	ErrUnsupportedTransition ErrCode = "UNSUPPORTED_TRANSITION"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts the error code, "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
