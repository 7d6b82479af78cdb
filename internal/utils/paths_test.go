package utils

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveUnder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	tests := []struct {
		name      string
		elems     []string
		wantErr   bool
		wantUnder string
	}{
		{
			name:      "plain file name",
			elems:     []string{"media", "landmark_1", "photo.jpg"},
			wantUnder: filepath.Join("media", "landmark_1", "photo.jpg"),
		},
		{
			name:    "parent traversal",
			elems:   []string{"media", "landmark_1", "../../etc/passwd"},
			wantErr: true,
		},
		{
			name:    "traversal all the way out",
			elems:   []string{"../../../../etc/passwd"},
			wantErr: true,
		},
		{
			name:      "dot segments that stay inside",
			elems:     []string{"media", "..", "media", "landmark_2", "a.png"},
			wantUnder: filepath.Join("media", "landmark_2", "a.png"),
		},
		{
			name:    "exactly one level up",
			elems:   []string{".."},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolveUnder(root, tt.elems...)
			if tt.wantErr {
				if !errors.Is(err, ErrOutsideRoot) {
					t.Fatalf("expected ErrOutsideRoot, got err=%v path=%q", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasSuffix(got, tt.wantUnder) {
				t.Fatalf("unexpected path: got=%q want suffix=%q", got, tt.wantUnder)
			}
		})
	}
}
