package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/isaque468/finagent/pkg/llm"
)

func TestAppendAndGetHistory(t *testing.T) {
	s := NewCoreState()

	s.AppendMessage(llm.Message{Role: llm.RoleUser, Content: "Qual o IR de R$ 50.000?"})
	s.AppendMessage(llm.Message{Role: llm.RoleAssistant, Content: "R$ 3.307,83"})

	got := s.GetHistory()
	if len(got) != 2 {
		t.Fatalf("history length = %d, want 2", len(got))
	}
	if got[0].Role != llm.RoleUser || got[1].Role != llm.RoleAssistant {
		t.Errorf("unexpected roles: %v, %v", got[0].Role, got[1].Role)
	}

	// Mutating the returned copy must not affect the state.
	got[0].Content = "mutated"
	if s.GetHistory()[0].Content != "Qual o IR de R$ 50.000?" {
		t.Error("GetHistory must return a copy")
	}
}

func TestBuildAgentContext(t *testing.T) {
	s := NewCoreState()
	s.AppendMessage(llm.Message{Role: llm.RoleUser, Content: "oi"})

	msgs := s.BuildAgentContext("system prompt here")
	if len(msgs) != 2 {
		t.Fatalf("context length = %d, want 2", len(msgs))
	}
	if msgs[0].Role != llm.RoleSystem || msgs[0].Content != "system prompt here" {
		t.Errorf("first message = %+v, want system prompt", msgs[0])
	}
	if msgs[1].Content != "oi" {
		t.Errorf("second message = %+v, want user message", msgs[1])
	}
}

func TestClearAndSetHistory(t *testing.T) {
	s := NewCoreState()
	s.AppendMessage(llm.Message{Role: llm.RoleUser, Content: "x"})

	s.ClearHistory()
	if s.Len() != 0 {
		t.Errorf("Len() after clear = %d, want 0", s.Len())
	}

	restored := []llm.Message{
		{Role: llm.RoleUser, Content: "a"},
		{Role: llm.RoleAssistant, Content: "b"},
	}
	s.SetHistory(restored)
	if s.Len() != 2 {
		t.Errorf("Len() after SetHistory = %d, want 2", s.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewCoreState()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.AppendMessage(llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("msg %d", n)})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.GetHistory()
			_ = s.BuildAgentContext("p")
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
}
