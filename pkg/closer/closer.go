package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Closer обеспечивает потокобезопасное закрытие ресурсов приложения.
// Ресурсы закрываются в порядке LIFO: последним добавлен — первым закрыт.
type Closer struct {
	entries       []entry
	mu            sync.Mutex
	once          sync.Once
	forcedTimeout time.Duration
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

type entry struct {
	name string
	f    Func
}

// NewCloser создает новый экземпляр Closer.
// forcedTimeout — время на принудительное закрытие оставшихся ресурсов
// при отмене контекста в Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout == 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
	}
}

// Add регистрирует функцию закрытия под человекочитаемым именем.
// Имя попадает в итоговое сообщение об ошибке.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, f: f})
}

// Close последовательно запускает закрытие всех зарегистрированных функций (LIFO).
// Если контекст отменяется до завершения, оставшиеся функции закрываются принудительно
// с собственным таймаутом.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		entries := c.entries
		c.mu.Unlock()

		var errMsgs []string
		for i := len(entries) - 1; i >= 0; i-- {
			en := entries[i]
			done := make(chan error, 1)

			go func() {
				done <- en.f(ctx)
			}()

			select {
			case closeErr := <-done:
				if closeErr != nil {
					errMsgs = append(errMsgs, fmt.Sprintf("[%s] %v", en.name, closeErr))
				}
			case <-ctx.Done():
				errMsgs = append(errMsgs, c.forcedClose(entries[:i+1])...)
				err = fmt.Errorf(
					"shutdown interrupted, %d of %d resources closed gracefully:\n%s",
					len(entries)-1-i, len(entries), strings.Join(errMsgs, "\n"),
				)
				return
			}
		}

		if len(errMsgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errMsgs, "\n"))
		}
	})

	return err
}

// forcedClose параллельно запускает оставшиеся функции закрытия с собственным таймаутом.
func (c *Closer) forcedClose(entries []entry) []string {
	forcedCtx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	var errMsgs []string

	for _, en := range entries {
		wg.Add(1)
		go func(en entry) {
			defer wg.Done()
			if err := en.f(forcedCtx); err != nil {
				mu.Lock()
				errMsgs = append(errMsgs, fmt.Sprintf("[%s] forced: %v", en.name, err))
				mu.Unlock()
			}
		}(en)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-forcedCtx.Done():
		mu.Lock()
		errMsgs = append(errMsgs, "forced close timed out")
		mu.Unlock()
	}

	return errMsgs
}
