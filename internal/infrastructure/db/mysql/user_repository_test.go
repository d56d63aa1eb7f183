package mysql

import (
	"errors"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/minitweet/api/internal/core/domain"
)

func TestFollowInsertError_DuplicateEdgeIsNoOp(t *testing.T) {
	err := followInsertError(&gomysql.MySQLError{Number: errDuplicateEntry})
	if err != nil {
		t.Fatalf("re-following must be a no-op, got %v", err)
	}
}

func TestFollowInsertError_UnknownFollowee(t *testing.T) {
	err := followInsertError(&gomysql.MySQLError{Number: errNoReferencedRow})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFollowInsertError_OtherErrorsPropagate(t *testing.T) {
	cause := &gomysql.MySQLError{Number: 1205, Message: "lock wait timeout"}
	err := followInsertError(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unrelated mysql errors must not map to a domain error")
	}
}

func TestIsMySQLError(t *testing.T) {
	if !isMySQLError(&gomysql.MySQLError{Number: errDuplicateEntry}, errDuplicateEntry) {
		t.Fatalf("expected match on error number")
	}
	if isMySQLError(errors.New("plain"), errDuplicateEntry) {
		t.Fatalf("non-mysql errors must not match")
	}
}
