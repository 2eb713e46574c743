package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildDateMatchExactDate(t *testing.T) {
	match := BuildDateMatch(DashboardFilter{Date: "2025-06-01"})
	if match["date"] != "2025-06-01" {
		t.Fatalf("date = %v, want exact match", match["date"])
	}
}

func TestBuildDateMatchExactDateWinsOverRange(t *testing.T) {
	match := BuildDateMatch(DashboardFilter{
		Date:      "2025-06-01",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	})
	if match["date"] != "2025-06-01" {
		t.Fatalf("exact date must win over the range variant, got %v", match)
	}
}

func TestBuildDateMatchRange(t *testing.T) {
	match := BuildDateMatch(DashboardFilter{StartDate: "2025-01-01", EndDate: "2025-01-31"})
	rangeMatch, ok := match["date"].(bson.M)
	if !ok {
		t.Fatalf("expected range filter, got %v", match)
	}
	if rangeMatch["$gte"] != "2025-01-01" || rangeMatch["$lte"] != "2025-01-31" {
		t.Fatalf("unexpected range bounds: %v", rangeMatch)
	}
}

func TestBuildDateMatchOpenEndedRange(t *testing.T) {
	match := BuildDateMatch(DashboardFilter{StartDate: "2025-01-01"})
	rangeMatch, ok := match["date"].(bson.M)
	if !ok {
		t.Fatalf("expected range filter, got %v", match)
	}
	if _, exists := rangeMatch["$lte"]; exists {
		t.Fatalf("end bound must be absent: %v", rangeMatch)
	}
}

func TestBuildDateMatchEmpty(t *testing.T) {
	if match := BuildDateMatch(DashboardFilter{}); len(match) != 0 {
		t.Fatalf("expected empty filter, got %v", match)
	}
}

func TestBuildUserMatchAlwaysExcludesStaff(t *testing.T) {
	match := BuildUserMatch("")
	if match["user.is_staff"] != false || match["user.is_superuser"] != false {
		t.Fatalf("staff and superusers must always be excluded: %v", match)
	}
	if _, exists := match["user.username"]; exists {
		t.Fatalf("empty employee filter must not add a username match: %v", match)
	}
}

func TestBuildUserMatchUsernameSubstring(t *testing.T) {
	match := BuildUserMatch("ali")
	regex, ok := match["user.username"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected a regex username match, got %v", match)
	}
	if regex.Pattern != "ali" {
		t.Fatalf("pattern = %q, want %q", regex.Pattern, "ali")
	}
	if regex.Options != "i" {
		t.Fatalf("username match must be case-insensitive, got options %q", regex.Options)
	}
}

func TestBuildUserMatchQuotesRegexMeta(t *testing.T) {
	match := BuildUserMatch("a.i")
	regex := match["user.username"].(primitive.Regex)
	if regex.Pattern != `a\.i` {
		t.Fatalf("regex metacharacters must be quoted, got %q", regex.Pattern)
	}
}
