// Package gtp implements the Go Text Protocol front end: a line-oriented
// command loop that drives an Engine, modernised from the original
// gongo_gtp.go (os.Error, strconv.Atof, AllMatchesString and friends)
// into current Go idiom while keeping its command set and response
// framing unchanged.
package gtp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/skybrian/goban/board"
)

// MaxBoardSize is the largest board GTP itself supports.
const MaxBoardSize = 25

// MoveResult reports what GenMove actually did.
type MoveResult int

const (
	Played MoveResult = iota
	Passed
	Resigned
)

func (m MoveResult) String() string {
	switch m {
	case Played:
		return "Played"
	case Passed:
		return "Passed"
	case Resigned:
		return "Resigned"
	}
	return "Unknown"
}

// ParseColor parses a GTP colour token ("b", "black", "w", "white").
func ParseColor(input string) (c board.Color, ok bool) {
	switch strings.ToLower(input) {
	case "w", "white":
		return board.White, true
	case "b", "black":
		return board.Black, true
	}
	return board.None, false
}

// Robot is the subset of Engine the command loop needs; kept as an
// interface so tests can drive the loop with a fake.
type Robot interface {
	GetBoardSize() int
	GetCell(x, y int) board.Color
	Play(c board.Color, x, y int) (ok bool, message string)
	SetBoardSize(size int) (ok bool)
	ClearBoard()
	SetKomi(komi float64)
	GenMove(color board.Color) (x, y int, result MoveResult)
}

// Run executes GTP commands read from input, writing responses to out,
// until a "quit" command is handled or an I/O error occurs.
func Run(robot Robot, input io.Reader, out io.Writer) error {
	in := bufio.NewReader(input)
	for {
		command, args, err := parseCommand(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		handle, ok := handlers[command]
		if !ok {
			fmt.Fprint(out, errorResponse("unknown command"))
			continue
		}

		fmt.Fprint(out, handle(request{robot, args}))

		if command == "quit" {
			return nil
		}
	}
}

var wordPattern = regexp.MustCompile(`\S+`)

func parseCommand(in *bufio.Reader) (cmd string, args []string, err error) {
	for {
		line, err := in.ReadString('\n')
		if err != nil {
			return "", nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		words := wordPattern.FindAllString(line, -1)
		return words[0], words[1:], nil
	}
}

type handlerFunc func(request) response

type request struct {
	robot Robot
	args  []string
}

type response struct {
	message string
	success bool
}

func successResponse(message string) response { return response{message, true} }
func errorResponse(message string) response    { return response{message, false} }

func (r response) String() string {
	prefix := "="
	if !r.success {
		prefix = "?"
	}
	return prefix + " " + r.message + "\n\n"
}

var handlers = map[string]handlerFunc{
	"boardsize": handleBoardsize,
	"clear_board": func(req request) response {
		req.robot.ClearBoard()
		return successResponse("")
	},
	"genmove":          handleGenmove,
	"known_command":    handleKnownCommand,
	"komi":             handleKomi,
	"list_commands":    handleListCommands,
	"name":             func(req request) response { return successResponse("goban") },
	"play":             handlePlay,
	"protocol_version": func(req request) response { return successResponse("2") },
	"quit":             func(req request) response { return successResponse("") },
	"showboard":        handleShowboard,
	"version":          func(req request) response { return successResponse("") },
}

func handleKnownCommand(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	_, ok := handlers[req.args[0]]
	return successResponse(fmt.Sprint(ok))
}

func handleListCommands(req request) response {
	if len(req.args) != 0 {
		return errorResponse("wrong number of arguments")
	}
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return successResponse(strings.Join(names, "\n"))
}

func handleBoardsize(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	size, err := strconv.Atoi(req.args[0])
	if err != nil {
		return errorResponse("unacceptable size")
	}
	if !req.robot.SetBoardSize(size) {
		return errorResponse("unacceptable size")
	}
	return successResponse("")
}

func handleKomi(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(req.args[0], 64)
	if err != nil {
		return errorResponse("syntax error")
	}
	req.robot.SetKomi(komi)
	return successResponse("")
}

func handlePlay(req request) response {
	if len(req.args) != 2 {
		return errorResponse("wrong number of arguments")
	}
	color, ok := ParseColor(req.args[0])
	if !ok {
		return errorResponse("syntax error")
	}
	x, y, ok := stringToVertex(req.args[1])
	if !ok {
		return errorResponse("syntax error")
	}
	if ok, _ := req.robot.Play(color, x, y); !ok {
		return errorResponse("illegal move")
	}
	return successResponse("")
}

func handleGenmove(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	color, ok := ParseColor(req.args[0])
	if !ok {
		return errorResponse("syntax error")
	}

	x, y, status := req.robot.GenMove(color)
	switch status {
	case Played:
		message, ok := vertexToString(x, y)
		if ok {
			return successResponse(message)
		}
		return errorResponse(message)
	case Passed:
		return successResponse("pass")
	case Resigned:
		return successResponse("resign")
	}
	return errorResponse("unknown move result")
}

func handleShowboard(req request) response {
	if len(req.args) != 0 {
		return errorResponse("wrong number of arguments")
	}
	size := req.robot.GetBoardSize()
	var buf bytes.Buffer
	for y := size; y >= 1; y-- {
		for x := 1; x <= size; x++ {
			switch req.robot.GetCell(x, y) {
			case board.None:
				buf.WriteString(".")
			case board.White:
				buf.WriteString("O")
			case board.Black:
				buf.WriteString("@")
			}
		}
		if y > 1 {
			buf.WriteString("\n")
		}
	}
	return successResponse(buf.String())
}

func stringToVertex(input string) (x, y int, ok bool) {
	input = strings.ToUpper(input)
	if len(input) < 2 {
		return 0, 0, false
	}
	if input == "PASS" {
		return 0, 0, true
	}

	x = 1 + int(input[0]) - int('A')
	if input[0] > 'I' {
		x--
	}
	if x < 1 || x > MaxBoardSize {
		return 0, 0, false
	}

	y, err := strconv.Atoi(input[1:])
	if err != nil || y < 1 || y > MaxBoardSize {
		return 0, 0, false
	}
	return x, y, true
}

func vertexToString(x, y int) (result string, ok bool) {
	if x < 1 || x > MaxBoardSize || y < 1 || y > MaxBoardSize {
		return fmt.Sprintf("invalid: (%v,%v)", x, y), false
	}
	letter := byte(x) - 1 + 'A'
	if letter >= 'I' {
		letter++
	}
	return fmt.Sprintf("%c%v", letter, y), true
}
