package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"github.com/jcorbin/gorpn/internal/flushio"
	"github.com/jcorbin/gorpn/internal/rpn"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/term"
)

// setupTerminal starts a line editor over the session's tty, routing results
// and any logger output through it. The tty input is closed by Session.Close.
func (sess *Session) setupTerminal(ctx context.Context) (lineReader, func()) {
	in := pipeInput(ctx, sess.tty)
	sess.closers = append(sess.closers, in)
	rw := struct {
		io.Reader
		io.Writer
	}{in, sess.tty}
	sess.term = term.NewTerminal(rw, sess.prompt)
	sess.term.AutoCompleteCallback = sess.complete
	sess.escape = sess.term.Escape
	sess.out = flushio.Tee(sess.term, sess.tee)

	done := func() {}
	if log := sess.log; log != nil {
		log.Wrap(func(wc io.WriteCloser) io.WriteCloser {
			return writeCloser{sess.term, wc}
		})
		done = log.Unwrap
	}
	return &termLines{
		term: sess.term,
		loc:  fileinput.Location{Name: "tty"},
	}, done
}

// complete handles Tab from the line editor: a partial variable reference,
// assignment, or operator word under the cursor is completed to its best
// fuzzy match; otherwise a preview of the line's result is shown.
func (sess *Session) complete(line string, pos int, key rune) (newLine string, newPos int, ok bool) {
	if key != '\t' {
		return "", 0, false
	}
	snap := sess.snapshot()

	start := strings.LastIndexAny(line[:pos], " \t") + 1
	token := line[start:pos]
	var sigil, word string
	var candidates []string
	switch {
	case strings.HasPrefix(token, "$"), strings.HasPrefix(token, "="):
		sigil, word = token[:1], token[1:]
		candidates = snap.VarNames()
	case token != "" && sess.classifier.Classify(token).Code == rpn.Noop:
		word = token
		candidates = rpn.Keywords()
	}

	if match := bestMatch(word, candidates); match != "" && match != word {
		sess.logf("#", "complete %q => %q", token, sigil+match)
		head := line[:start] + sigil + match
		return head + line[pos:], len(head), true
	}

	preview := sess.classifier.Preview(snap, line)
	fmt.Fprintf(sess.term, "%s%s%s\n", sess.escape.Yellow, preview, sess.escape.Reset)
	return "", 0, false
}

// bestMatch returns the closest fuzzy match for word, preferring the
// lexically smallest among equally close ones.
func bestMatch(word string, candidates []string) string {
	if word == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(word, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})
	return ranks[0].Target
}
