package backend

import (
	"bytes"
	"encoding/json"

	"blog-front/models"
)

// DecodeListing은 GET /manage/all 응답을 정규 형태 { "blogs": [Post, ...] }로 검증하며 디코딩한다.
// 다른 형태(최상위 배열 포함)는 모두 ErrParse로 거부한다.
func DecodeListing(data []byte) ([]models.Post, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, parseErrorf("listing is not a JSON object: %v", err)
	}
	raw, ok := env["blogs"]
	if !ok {
		return nil, parseErrorf("listing has no blogs field")
	}
	return decodePosts(raw)
}

func decodePosts(raw json.RawMessage) ([]models.Post, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, parseErrorf("blogs is not an array")
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, parseErrorf("blogs: %v", err)
	}

	seen := make(map[string]struct{}, len(posts))
	for i := range posts {
		p := &posts[i]
		if err := p.Validate(); err != nil {
			return nil, parseErrorf("blogs[%d]: %v", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, parseErrorf("blogs[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Files == nil {
			p.Files = []string{}
		}
	}
	return posts, nil
}
