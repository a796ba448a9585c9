package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "keywords",
			objectType:  "list",
			identifier:  "abc123",
			paramsKey:   nil,
			expectedKey: "quizforge:keywords:list:abc123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "keywords",
			objectType:  "list",
			identifier:  "abc123",
			paramsKey:   []string{},
			expectedKey: "quizforge:keywords:list:abc123",
		},
		{
			name:        "with top_n param",
			serviceName: "keywords",
			objectType:  "list",
			identifier:  "abc123",
			paramsKey:   []string{"5"},
			expectedKey: "quizforge:keywords:list:abc123:5",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "generation",
			objectType:  "batch",
			identifier:  "xyz",
			paramsKey:   []string{"param1", "param2", "param3"},
			expectedKey: "quizforge:generation:batch:xyz:param1_param2_param3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
