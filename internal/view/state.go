package view

import (
	"errors"
	"sync"
)

// State стан панелі даних: життєвий цикл одного завантаження
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

var (
	// ErrAlreadyLoading повертається при спробі почати завантаження,
	// коли попереднє ще триває
	ErrAlreadyLoading = errors.New("view: panel is already loading")

	// ErrNotLoading повертається при завершенні завантаження,
	// яке не було розпочато
	ErrNotLoading = errors.New("view: panel is not loading")
)

// Panel панель даних з фіксованими переходами станів:
// idle -> loading -> success | error; з success та error можна
// перезавантажити (знову loading), з loading - ні.
type Panel struct {
	mu    sync.Mutex
	state State
	err   error
}

// NewPanel створює панель у стані idle
func NewPanel() *Panel {
	return &Panel{state: StateIdle}
}

// Begin переводить панель у loading
func (p *Panel) Begin() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateLoading {
		return ErrAlreadyLoading
	}

	p.state = StateLoading
	p.err = nil
	return nil
}

// Succeed переводить панель із loading у success
func (p *Panel) Succeed() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateLoading {
		return ErrNotLoading
	}

	p.state = StateSuccess
	return nil
}

// Fail переводить панель із loading у error і зберігає причину
func (p *Panel) Fail(err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateLoading {
		return ErrNotLoading
	}

	p.state = StateError
	p.err = err
	return nil
}

// State повертає поточний стан панелі
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err повертає причину помилки або nil, якщо панель не в стані error
func (p *Panel) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
