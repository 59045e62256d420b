package stream

import "github.com/dhamidi/kobol/data"

// Target receives tokens and markers once they are committed, in the order
// in which they were produced.
type Target interface {
	Push(d data.Data)
}

type TargetFunc func(d data.Data)

func (f TargetFunc) Push(d data.Data) {
	f(d)
}

// Collector is a Target which remembers everything it is given.
type Collector struct {
	Data []data.Data
}

func (c *Collector) Push(d data.Data) {
	c.Data = append(c.Data, d)
}

// Tokens returns the collected tokens, skipping markers.
func (c *Collector) Tokens() []*data.Token {
	var tokens []*data.Token
	for _, d := range c.Data {
		if t, ok := d.(*data.Token); ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
