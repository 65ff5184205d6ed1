package renderer

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrorHTML은 변환에 실패했을 때 미리보기 자리에 보여주는 문단이다.
const ErrorHTML = `<p style="color: red;">Error parsing markdown. Please check your syntax.</p>`

// GFM + 줄바꿈을 <br>로. raw HTML은 통과시키고 bluemonday 로 걸러낸다.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, emoji.Emoji),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// GFM 체크박스
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	return p
}

// Markdown은 markdown 소스를 정제된 HTML로 변환한다. 빈 입력은 빈 문자열.
func Markdown(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return string(policy.SanitizeBytes(buf.Bytes())), nil
}

// Preview는 에디터 미리보기용이다. 실패해도 에러 대신 ErrorHTML을 돌려준다.
func Preview(src string) string {
	out, err := Markdown(src)
	if err != nil {
		return ErrorHTML
	}
	return out
}

// EditorTemplate은 새 글 에디터의 초기 내용이다.
const EditorTemplate = "# Welcome to the Blog Editor!\n\n" +
	"Write your **blog post** here using _markdown_ syntax.\n\n" +
	"## Features Supported:\n" +
	"- **Bold** and *italic* text\n" +
	"- [Links](https://example.com)\n" +
	"- Code blocks\n" +
	"- Lists\n" +
	"- And much more!\n\n" +
	"```go\n// Code example\nfmt.Println(\"Hello from the blog editor!\")\n```\n\n" +
	"> This is a blockquote to highlight important information.\n\n" +
	"Happy writing! :rocket:\n"
