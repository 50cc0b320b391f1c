package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestAddClaimantIdempotent(t *testing.T) {
	list, changed := AddClaimant(nil, "bob@example.com")
	assert.True(t, changed)
	assert.Equal(t, pq.StringArray{"bob@example.com"}, list)

	again, changed := AddClaimant(list, "bob@example.com")
	assert.False(t, changed)
	assert.Equal(t, pq.StringArray{"bob@example.com"}, again)
}

func TestRemoveClaimantPreservesOrder(t *testing.T) {
	list := pq.StringArray{"alice", "bob", "carol"}

	next, changed := RemoveClaimant(list, "bob")
	assert.True(t, changed)
	assert.Equal(t, pq.StringArray{"alice", "carol"}, next)
}

func TestRemoveClaimantAbsentIsNoop(t *testing.T) {
	list := pq.StringArray{"alice", "carol"}

	next, changed := RemoveClaimant(list, "bob")
	assert.False(t, changed)
	assert.Equal(t, list, next)
}

// Claim followed by unclaim for the same user restores the original list.
func TestClaimUnclaimRoundTrip(t *testing.T) {
	original := pq.StringArray{"alice", "carol"}

	claimed, changed := AddClaimant(original, "bob@example.com")
	assert.True(t, changed)
	assert.Equal(t, pq.StringArray{"alice", "carol", "bob@example.com"}, claimed)

	restored, changed := RemoveClaimant(claimed, "bob@example.com")
	assert.True(t, changed)
	assert.Equal(t, original, restored)
}

func TestAddClaimantDoesNotMutateInput(t *testing.T) {
	original := pq.StringArray{"alice"}
	_, _ = AddClaimant(original, "bob")
	assert.Equal(t, pq.StringArray{"alice"}, original)
}

func TestDedupeClaimants(t *testing.T) {
	got := DedupeClaimants([]string{"alice", "bob", "alice", "", "carol", "bob"})
	assert.Equal(t, pq.StringArray{"alice", "bob", "carol"}, got)
}

func TestUserIdentity(t *testing.T) {
	u := &User{Email: "bob@example.com", DisplayName: "Bob"}
	assert.Equal(t, "Bob", u.Identity())

	u.DisplayName = ""
	assert.Equal(t, "bob@example.com", u.Identity())
}
