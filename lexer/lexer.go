// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func() NextOperation

	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer splits a materialized path into delimiter & segment Items.
	//
	// Lexing is synchronous, Items are collected rather than sent over a channel.
	// Item values are sliced from the path, bytes that are not valid UTF-8 are kept as is.
	Lexer struct {
		opts Opts

		path string

		// source is the input source.
		source io.RuneReader
		// sourceIndex is the byte offset of the buffer's first rune.
		sourceIndex int

		// buffer is a slice of runes being lexed.
		buffer []rune
		// sizes holds the encoded length of every buffered rune.
		sizes []int
		// bufferIndex is the current buffer position.
		bufferIndex int

		items []Item
		lexed bool

		segmentCounter   int
		delimiterCounter int
	}
)

const defBufferSize = 10

// Lexing errors.
var (
	ErrInvalidBackupAmount = fmt.Errorf("invalid backup amount")
)

// New creates a new Lexer for a path.
func New(opts Opts, path string) *Lexer {
	opts.Validate()

	return &Lexer{
		opts:   opts,
		path:   path,
		source: strings.NewReader(path),
		buffer: make([]rune, 0, defBufferSize),
		sizes:  make([]int, 0, defBufferSize),
	}
}

// Split lexes a path & returns its non-empty segments.
func Split(opts Opts, path string) []string { return New(opts, path).Segments() }

// Lex lexes the input by executing state functions.
//
// Repeated calls return the Items of the first run.
func (l *Lexer) Lex() []Item {
	if l.lexed {
		return l.items
	}

	for stateFunction := l.lexDelimiter; stateFunction != nil; {
		stateFunction = stateFunction()
	}
	l.lexed = true

	if l.opts.Debug {
		l.opts.Logger.Debugf("lexed items: %+v", l.items)
	}

	return l.items
}

// Segments lists the values of the lexed segment Items.
//
// Consecutive delimiters yield no empty segments.
func (l *Lexer) Segments() (segments []string) {
	items := l.Lex()

	segments = make([]string, 0, l.segmentCounter)
	for index := range items {
		if items[index].ID == ItemSegment {
			segments = append(segments, items[index].Val)
		}
	}

	return
}

// SegmentCount is the number of lexed segments.
func (l *Lexer) SegmentCount() int {
	l.Lex()
	return l.segmentCounter
}

// DelimiterCount is the number of lexed delimiters.
func (l *Lexer) DelimiterCount() int {
	l.Lex()
	return l.delimiterCounter
}

// lexDelimiter consumes a delimiter run, emitting one Item per delimiter.
func (l *Lexer) lexDelimiter() NextOperation {
	r, err := l.Next()
	if err != nil {
		l.Emit(ItemEOF)
		return nil
	}

	if !l.isDelimiter(r) {
		return l.lexSegment
	}

	l.delimiterCounter++
	l.Emit(ItemDelimiter)

	return l.lexDelimiter
}

// lexSegment consumes runes up to the next delimiter or the end of the path.
func (l *Lexer) lexSegment() NextOperation {
	if err := l.AcceptWhile(l.isSegment); err != nil && err != io.EOF {
		return nil
	}

	l.segmentCounter++
	l.Emit(ItemSegment)

	return l.lexDelimiter
}

// Next return the Next rune in the input.
func (l *Lexer) Next() (r rune, err error) {
	if l.bufferIndex < len(l.buffer) {
		l.bufferIndex++
		r = l.buffer[l.bufferIndex-1]

		return
	}

	// Check if end of source input
	var size int
	if r, size, err = l.source.ReadRune(); err != nil {
		return
	}

	// Append rune to the buffer & update the buffer index
	l.buffer = append(l.buffer, r)
	l.sizes = append(l.sizes, size)
	l.bufferIndex++

	return
}

// Backup step back one rune.
func (l *Lexer) Backup() (err error) {
	if l.bufferIndex < 1 {
		err = fmt.Errorf("%w: buffer index %d", ErrInvalidBackupAmount, l.bufferIndex)
		return
	}
	l.bufferIndex--

	return
}

// AcceptWhile consumes runes while condition is true.
//
// io.EOF is returned when the input ends while the condition holds.
func (l *Lexer) AcceptWhile(fn ValidationFunction) (err error) {
	var r rune
	for {
		if r, err = l.Next(); err != nil {
			return
		}

		if !fn(r) {
			// Backup if validation fails.
			return l.Backup()
		}
	}
}

// Emit records an Item for the runes preceding the buffer index.
func (l *Lexer) Emit(t ItemID) {
	l.items = append(l.items, Item{
		ID:  t,
		Pos: l.sourceIndex,
		Val: l.path[l.sourceIndex : l.sourceIndex+l.bufferedBytes()],
	})
	l.Ignore()
}

// Ignore skip scanner input before the current buffer index.
func (l *Lexer) Ignore() {
	l.sourceIndex += l.bufferedBytes()
	l.buffer = l.buffer[l.bufferIndex:]
	l.sizes = l.sizes[l.bufferIndex:]

	l.bufferIndex = 0
}

// bufferedBytes is the encoded length of the runes preceding the buffer index.
func (l *Lexer) bufferedBytes() (n int) {
	for _, size := range l.sizes[:l.bufferIndex] {
		n += size
	}

	return
}

// isDelimiter checks the last rune read; an invalid byte decoded as utf8.RuneError never matches.
func (l *Lexer) isDelimiter(r rune) bool {
	return r == l.opts.Delimiter && l.sizes[l.bufferIndex-1] == utf8.RuneLen(r)
}

func (l *Lexer) isSegment(r rune) bool { return !l.isDelimiter(r) }
