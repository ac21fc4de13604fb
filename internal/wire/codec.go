package wire

import (
	"strconv"
	"strings"
)

// Encode serializes a message into its line-oriented wire form:
//
//	<typeNumber>\n
//	<id1> <address1> <pingsDropped1>\n
//	<id2> <address2> <pingsDropped2>\n
//	...
//
// The returned buffer always ends with a trailing newline, though Decode does not require one.
func Encode(message Message) []byte {
	var builder strings.Builder
	builder.WriteString(strconv.Itoa(int(message.Type)))
	builder.WriteByte('\n')
	for _, member := range message.Members {
		builder.WriteString(member.ID)
		builder.WriteByte(' ')
		builder.WriteString(member.Address)
		builder.WriteByte(' ')
		builder.WriteString(strconv.Itoa(member.PingsDropped))
		builder.WriteByte('\n')
	}
	return []byte(builder.String())
}

// Decode parses the line-oriented wire form produced by Encode. The trailing newline is optional. Decode returns
// ErrUnknownType if the first line is not a well-formed integer in the 1..6 range, and ErrMalformedMessage if any
// member line does not split into exactly three space-separated tokens.
func Decode(buffer []byte) (Message, error) {
	text := strings.TrimRight(string(buffer), "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return Message{}, ErrMalformedMessage
	}

	typeNumber, err := strconv.Atoi(lines[0])
	if err != nil {
		return Message{}, ErrUnknownType
	}
	messageType := MessageType(typeNumber)
	if !messageType.IsValid() {
		return Message{}, ErrUnknownType
	}

	var members []Member
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		tokens := strings.Split(line, " ")
		if len(tokens) != 3 {
			return Message{}, ErrMalformedMessage
		}
		pingsDropped, err := strconv.Atoi(tokens[2])
		if err != nil {
			return Message{}, ErrMalformedMessage
		}
		members = append(members, Member{
			ID:           tokens[0],
			Address:      tokens[1],
			PingsDropped: pingsDropped,
		})
	}

	return Message{
		Type:    messageType,
		Members: members,
	}, nil
}
