package testutil

import (
	"context"

	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock of runner.Runner. Expectations are set on
// the command's String() form:
//
//	m.On("Run", "git switch main").Return(nil)
type MockRunner struct {
	mock.Mock
}

// Run implements runner.Runner
func (m *MockRunner) Run(ctx context.Context, cmd types.Command) error {
	args := m.Called(cmd.String())
	return args.Error(0)
}
