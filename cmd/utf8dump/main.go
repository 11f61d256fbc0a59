// Command utf8dump decodes its arguments as UTF-8 text and prints the
// decoded codepoints as space-separated decimal numbers.
// Without arguments it decodes a fixed sample string covering all four
// sequence lengths.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/pchchv/utf8"
)

func main() {
	flag.Parse()
	s := "¢€한𐍈"
	if flag.NArg() > 0 {
		s = strings.Join(flag.Args(), " ")
	}

	cps, err := utf8.DecodeString(s)
	if err != nil {
		log.Fatal(err)
	}

	out := make([]string, len(cps))
	for i, cp := range cps {
		out[i] = fmt.Sprint(uint32(cp))
	}

	fmt.Println(strings.Join(out, " "))
}
