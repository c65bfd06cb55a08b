// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. A nil field falls back
// to the mock's default return values, so tests only set what they exercise:
//
//	users := &mocks.MockUserService{
//	    GetUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
//	        return nil, errors.New("store unavailable")
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
