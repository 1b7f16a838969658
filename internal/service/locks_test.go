package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationLocks_SerializesSameConversation(t *testing.T) {
	locks := newConversationLocks()

	const turns = 50
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire("conv-1")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, turns, counter)
}

func TestConversationLocks_IndependentConversationsDoNotBlock(t *testing.T) {
	locks := newConversationLocks()

	releaseA := locks.acquire("conv-a")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		release := locks.acquire("conv-b")
		release()
		close(done)
	}()

	// Holding conv-a must not stop conv-b from being acquired.
	<-done
}
