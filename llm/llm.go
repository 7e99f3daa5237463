/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package llm implements the external LLM collaborator: it sends the FEN
// of the current position to a chat completion API and turns the reply
// into a Move, retrying with a reworded prompt on a malformed or illegal
// answer. It is the only network-aware component in this repository - the
// engine core itself never performs I/O.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/FR97/chess-rot/chesserrors"
	myLogging "github.com/FR97/chess-rot/logging"
	"github.com/FR97/chess-rot/movegen"
	"github.com/FR97/chess-rot/position"
	. "github.com/FR97/chess-rot/types"
)

var log = myLogging.GetLog()

const (
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultModel    = "gpt-4o"
	maxAttempts     = 5
)

// Collaborator asks an external chat completion API to suggest the next
// move for a position and validates the answer against the position's
// legal moves. A Collaborator is safe for reuse across positions -
// FindMove keeps its retry state in local variables and never writes
// to the Collaborator's fields.
type Collaborator struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
}

// NewCollaborator creates a Collaborator authenticating with apiKey
// against the default chat completion endpoint.
func NewCollaborator(apiKey string) *Collaborator {
	return &Collaborator{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// FindMove sends the FEN of pos to the collaborator and returns the move
// it suggests, matched against pos's own legal moves. On a malformed or
// illegal reply it retries up to four more times with a differently
// worded prompt; after the fifth failure it returns a LlmResponseError.
func (c *Collaborator) FindMove(ctx context.Context, pos *position.Position) (Move, error) {
	fen := pos.StringFen()

	legal := movegen.New().LegalMoves(pos)
	if legal.Len() == 0 {
		return MoveNone, chesserrors.NewNoLegalMoveError(fen)
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		prompt := initialPrompt(fen)
		if attempt > 0 {
			prompt = retryPrompt(fen)
		}

		reply, err := c.complete(ctx, prompt)
		if err != nil {
			lastErr = err
			log.Warningf("llm collaborator: attempt %d failed: %s", attempt+1, err)
			continue
		}

		m, err := matchMove(reply, legal)
		if err != nil {
			lastErr = err
			log.Warningf("llm collaborator: attempt %d produced %q: %s", attempt+1, reply, err)
			continue
		}

		return m, nil
	}

	return MoveNone, chesserrors.NewLlmResponseError(fen, maxAttempts, lastErr)
}

func initialPrompt(fen string) string {
	return fmt.Sprintf(
		"I would like to play chess with you. I will send you the current game "+
			"state in FEN format and you give me the next optimal move in the "+
			"format <square from><square to>, e.g. a1b2. Only give the move, "+
			"no explanation. FEN position: %s", fen)
}

func retryPrompt(fen string) string {
	return fmt.Sprintf(
		"The move you suggested was invalid. Suggest a new legal move for "+
			"FEN position: %s. Make sure your response is in the format a1b2.", fen)
}

// complete sends prompt as the only user message and returns the raw
// text of the first choice.
func (c *Collaborator) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   7,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding llm response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm response had no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// matchMove parses a four- or five-character move string of the form
// <from><to> or <from>-<to> and matches it against legal, the legal
// moves of the position the string was suggested for.
func matchMove(text string, legal *MoveList) (Move, error) {
	from, to, ok := parseMoveText(text)
	if !ok {
		return MoveNone, chesserrors.NewInvalidMoveError(text)
	}

	fromSq := MakeSquare(from)
	toSq := MakeSquare(to)
	if fromSq == SqNone {
		return MoveNone, chesserrors.NewInvalidSquareError(from)
	}
	if toSq == SqNone {
		return MoveNone, chesserrors.NewInvalidSquareError(to)
	}

	var found Move
	legal.ForEach(func(i int) {
		m := legal.At(i)
		if m.From() == fromSq && m.To() == toSq && found == MoveNone {
			found = m
		}
	})
	if found == MoveNone {
		return MoveNone, chesserrors.NewInvalidMoveError(text)
	}
	return found, nil
}

// parseMoveText splits a trimmed move string into its from/to square
// substrings. Accepts "a1b2" and "a1-b2" (any single separator
// character at index 2 is tolerated, matching the looseness of a free
// text LLM reply).
func parseMoveText(text string) (from, to string, ok bool) {
	text = trimMoveText(text)
	switch len(text) {
	case 4:
		return text[0:2], text[2:4], true
	case 5:
		return text[0:2], text[3:5], true
	default:
		return "", "", false
	}
}

// trimMoveText strips surrounding whitespace and quotes a chat model
// sometimes wraps its answer in.
func trimMoveText(text string) string {
	start, end := 0, len(text)
	for start < end && isTrimmable(text[start]) {
		start++
	}
	for end > start && isTrimmable(text[end-1]) {
		end--
	}
	return text[start:end]
}

func isTrimmable(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '.', '"', '\'':
		return true
	default:
		return false
	}
}
