package service

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps(), gmhtml.WithXHTML()),
	)
	sanitizer   = bluemonday.UGCPolicy()
	textExtract = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)
)

// RenderMarkdown 将日记 Markdown 渲染为经过清洗的 HTML
func RenderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// PlainText 去掉 Markdown 与 HTML 标记，只保留可读文本，供情绪分析使用。
// 渲染失败时退回到直接剥离原文中的标签。
func PlainText(content string) string {
	var buf bytes.Buffer
	source := []byte(content)
	if err := markdownEngine.Convert(source, &buf); err == nil {
		source = buf.Bytes()
	}
	stripped := html.UnescapeString(string(textExtract.SanitizeBytes(source)))
	return strings.Join(strings.Fields(stripped), " ")
}
