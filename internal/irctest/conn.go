package irctest

import (
	"strings"
)

// Conn records the lines a session writes.
type Conn struct {
	lines   []string
	partial string
	read    int
}

// Write splits the data into lines, without the line endings.
func (conn *Conn) Write(p []byte) (int, error) {
	data := conn.partial + string(p)

	for {
		index := strings.IndexByte(data, '\n')
		if index == -1 {
			break
		}

		conn.lines = append(conn.lines, strings.TrimSuffix(data[:index], "\r"))
		data = data[index+1:]
	}

	conn.partial = data

	return len(p), nil
}

// Next gets the oldest line that hasn't been read yet.
func (conn *Conn) Next() (string, bool) {
	if conn.read >= len(conn.lines) {
		return "", false
	}

	line := conn.lines[conn.read]
	conn.read++

	return line, true
}

// Lines gets every line written so far.
func (conn *Conn) Lines() []string {
	return append([]string(nil), conn.lines...)
}

// Drain gets the lines that haven't been read yet, and marks them as read.
func (conn *Conn) Drain() []string {
	lines := append([]string(nil), conn.lines[conn.read:]...)
	conn.read = len(conn.lines)

	return lines
}
