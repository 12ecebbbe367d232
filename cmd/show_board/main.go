package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/othello/internal/console"
	"github.com/lk16/othello/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, e.g. 00000008100000000000001008000000-b")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	console.Render(os.Stdout, board)
}
