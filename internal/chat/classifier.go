// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"strings"

	"github.com/tomtom215/melodia/internal/cache"
)

// proximityWindow is how many words on each side of a request verb are
// searched for a music noun.
const proximityWindow = 5

var (
	triggerPhrases = cache.NewPhraseMatcher([]string{
		"recommend songs", "recommend a song", "recommend some songs", "recommend music",
		"suggest songs", "suggest a song", "suggest some music",
		"play a song", "play some music", "play something",
		"songs like", "music like", "similar songs", "similar to",
		"what should i listen to",
	})

	directReferencePhrases = cache.NewPhraseMatcher([]string{
		"song named", "song called", "track named", "track called",
		"titled", "play the song", "listen to the song",
	})

	requestVerbs = []string{"recommend", "play", "hear", "want", "find", "listen", "suggest"}
	musicNouns   = []string{"song", "track", "music", "album", "artist"}
)

// IsRecommendationRequest reports whether text asks for songs rather than
// general conversation.
func IsRecommendationRequest(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return false
	}
	if triggerPhrases.Contains(lower) || directReferencePhrases.Contains(lower) {
		return true
	}
	return hasVerbNearNoun(strings.Fields(lower))
}

// hasVerbNearNoun scans for a request verb with a music noun within
// proximityWindow words on either side.
func hasVerbNearNoun(words []string) bool {
	for i := range words {
		if !isRequestVerb(words, i) {
			continue
		}
		lo := max(0, i-proximityWindow)
		hi := min(len(words), i+proximityWindow+1)
		for j := lo; j < hi; j++ {
			if j != i && containsAny(words[j], musicNouns) {
				return true
			}
		}
	}
	return false
}

func isRequestVerb(words []string, i int) bool {
	if containsAny(words[i], requestVerbs) {
		return true
	}
	// "looking" only counts as "looking for".
	return strings.Contains(words[i], "looking") && i+1 < len(words) && strings.HasPrefix(words[i+1], "for")
}

func containsAny(word string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(word, s) {
			return true
		}
	}
	return false
}
