package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type inputResult struct {
	text string
	err  error
}

// linePump reads lines in the background so a blocked read never outlives
// a cancelled context. The goroutine starts on the first call to next.
type linePump struct {
	reader *bufio.Reader
	ch     chan inputResult
	once   sync.Once
}

func (p *linePump) start() {
	p.once.Do(func() {
		p.ch = make(chan inputResult)
		go p.run()
	})
}

func (p *linePump) run() {
	for {
		text, err := p.reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			p.ch <- inputResult{text: text}
		}

		if err != nil {
			if err != io.EOF {
				p.ch <- inputResult{err: err}
			}
			close(p.ch)
			return
		}
	}
}

// next returns the following raw line. It returns io.EOF once the reader is
// exhausted and ctx.Err() if ctx ends first.
func (p *linePump) next(ctx context.Context) (string, error) {
	p.start()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.ch:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
