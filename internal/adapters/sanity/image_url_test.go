package sanity

import "testing"

func testImageURLBuilder(t *testing.T) *ImageURLBuilder {
	t.Helper()
	client, err := NewClient(Config{ProjectID: "proj1", Dataset: "production"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return NewImageURLBuilder(client)
}

func TestImageURL(t *testing.T) {
	b := testImageURLBuilder(t)

	tests := []struct {
		name          string
		assetRef      string
		width, height int
		want          string
	}{
		{
			name:     "original size",
			assetRef: "image-abc123-1200x800-jpg",
			want:     "https://cdn.sanity.io/images/proj1/production/abc123-1200x800.jpg",
		},
		{
			name:     "card size with crop",
			assetRef: "image-abc123-1200x800-jpg",
			width:    800,
			height:   600,
			want:     "https://cdn.sanity.io/images/proj1/production/abc123-1200x800.jpg?fit=crop&h=600&w=800",
		},
		{
			name:     "width only",
			assetRef: "image-abc123-1200x800-webp",
			width:    1600,
			want:     "https://cdn.sanity.io/images/proj1/production/abc123-1200x800.webp?fit=crop&w=1600",
		},
		{
			name:     "malformed ref gives empty string",
			assetRef: "file-abc123-pdf",
			want:     "",
		},
		{
			name:     "empty ref gives empty string",
			assetRef: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.ImageURL(tt.assetRef, tt.width, tt.height)
			if got != tt.want {
				t.Errorf("ImageURL(%q, %d, %d) = %q, want %q", tt.assetRef, tt.width, tt.height, got, tt.want)
			}
		})
	}
}
