package messaging

import (
	"fmt"
	"strings"

	"github.com/glimte/msgevents-go/contracts"
)

// IdentityFormat passes the first argument through unchanged. Further
// arguments are dropped.
func IdentityFormat(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// ErrorFormat builds a contracts.ErrorEvent from (method, words...). The words
// are joined with single spaces.
func ErrorFormat(sender string) FormatFunc {
	return func(args ...any) any {
		event := contracts.ErrorEvent{
			Sender: sender,
			Type:   contracts.TypeError,
		}
		if len(args) == 0 {
			return event
		}

		event.Method = fmt.Sprint(args[0])
		words := make([]string, 0, len(args)-1)
		for _, word := range args[1:] {
			words = append(words, fmt.Sprint(word))
		}
		event.Text = strings.Join(words, " ")

		return event
	}
}
