package services

import (
	"net/http"
	"testing"

	"BistroBoss/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseCartIDs(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	ids, err := ParseCartIDs([]string{first.Hex(), second.Hex()})
	if err != nil {
		t.Fatalf("ParseCartIDs returned error: %v", err)
	}
	if len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestParseCartIDsRejectsMalformed(t *testing.T) {
	_, err := ParseCartIDs([]string{primitive.NewObjectID().Hex(), "nope"})
	if err == nil {
		t.Fatal("expected an error for a malformed id")
	}

	customErr, ok := err.(*utils.CustomError)
	if !ok {
		t.Fatalf("expected a CustomError, got %T", err)
	}
	if customErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", customErr.StatusCode)
	}
}

func TestParseCartIDsEmpty(t *testing.T) {
	ids, err := ParseCartIDs(nil)
	if err != nil {
		t.Fatalf("ParseCartIDs returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}
}
