package main

import (
	"fmt"
	"log/slog"
	"os"

	markup "github.com/dpotapov/go-markup"
)

const page = `<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
	<title>Inventory &amp; Orders</title>
	<script>if (items < 10) { reorder(); }</script>
</head>
<body>
	<!-- rendered server-side -->
	<p class="note">Total: &euro;42 &mdash; updated <b>daily</b></p>
	<img src=/img/logo.png alt="logo" />
	<%= renderFooter() %>
</body>
</html>`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	t := &markup.Tokenizer{
		AutoBalanceTags: true,
		UnparsedTags:    []string{"script", "style"},
		Logger:          logger,
	}

	tokens, err := t.TokenizeString(page)
	if err != nil {
		logger.Error("tokenize failed", "error", err)
		os.Exit(1)
	}

	for _, tok := range tokens {
		switch tok.Type {
		case markup.TokenElementBegin, markup.TokenElementVoid, markup.TokenAttribute:
			fmt.Printf("%-13s %s\n", tok.Type, tok.Name)
		case markup.TokenPrimitive:
			fmt.Printf("%-13s %q\n", tok.Type, tok.Value)
		case markup.TokenUnparsed:
			fmt.Printf("%-13s %q (%s %s)\n", tok.Type, tok.Value, tok.Begin, tok.End)
		default:
			fmt.Println(tok.Type)
		}
	}

	var f markup.Formatter
	out, err := f.Format(tokens)
	if err != nil {
		logger.Error("format failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("\n--- round-trip ---")
	fmt.Println(out)
}
