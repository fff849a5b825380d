// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/melodia/internal/cache"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jazz, Miles Davis, 'So What', bebop", "jazz|Miles Davis|So What|bebop"},
		{`"rock", pop, ab, , x`, "rock|pop"},
		{"one1, two2, three3, four4, five5, six6", "one1|two2|three3|four4|five5"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := strings.Join(parseKeywords(tt.in), "|"); got != tt.want {
			t.Errorf("parseKeywords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeywordGenerator_CachesPerNormalizedQuery(t *testing.T) {
	gen := &recordingGenerator{reply: "soul, Aretha Franklin"}
	c := cache.New[[]string](time.Minute)
	defer c.Close()
	k := NewKeywordGenerator(gen, c)

	first := k.Keywords(context.Background(), "Something  Soulful")
	second := k.Keywords(context.Background(), "something soulful")

	if strings.Join(first, "|") != "soul|Aretha Franklin" || strings.Join(second, "|") != "soul|Aretha Franklin" {
		t.Errorf("Keywords() = %v then %v", first, second)
	}
	if len(gen.purposes) != 1 {
		t.Errorf("model called %d times, want 1", len(gen.purposes))
	}
	if gen.purposes[0] != "keywords" {
		t.Errorf("purpose = %q", gen.purposes[0])
	}
}

func TestKeywordGenerator_FailureYieldsNothing(t *testing.T) {
	gen := &recordingGenerator{err: errors.New("rate limited")}
	c := cache.New[[]string](time.Minute)
	defer c.Close()

	if kws := NewKeywordGenerator(gen, c).Keywords(context.Background(), "anything"); kws != nil {
		t.Errorf("Keywords() = %v, want nil", kws)
	}
	if c.Len() != 0 {
		t.Error("failure was cached")
	}
}
