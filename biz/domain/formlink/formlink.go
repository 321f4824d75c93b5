package formlink

import (
	"regexp"
	"strings"

	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/form"
)

// formlink 把回答文本中的表单指称(如 "Form No. 3"/"form-3"/"FORM\n3")
// 替换为参照表里登记的文档直链, 其余文本一律不动
// 整体是纯函数: 参照表快照 -> 查找表 -> 替换, 不持有共享状态

var (
	// identifierRe 从表单名中提取标识符, 容忍前导"form"与分隔符
	identifierRe = regexp.MustCompile(`(?i)form[-\s]*([0-9]*[a-zA-Z]?[0-9]*)`)
	// referenceRe 匹配文本中的表单指称, 容忍"No."/"Number"与跨行写法
	referenceRe = regexp.MustCompile(`(?i)\bform(?:[-\s]+(?:no\.?|number))?[-\s]*\n?\s*([0-9]+[a-zA-Z]?[0-9]*|[a-zA-Z][0-9]+)`)
	urlRe       = regexp.MustCompile(`https?://\S+`)
)

// BuildLookup 从参照表快照构建 标识符->链接 的查找表
// 名称中提取不出标识符的记录会被跳过
func BuildLookup(forms []*form.Form) map[string]string {
	lookup := make(map[string]string, len(forms))
	for _, f := range forms {
		match := identifierRe.FindStringSubmatch(f.FormName)
		if match == nil || match[1] == "" {
			continue
		}
		lookup[strings.ToLower(match[1])] = f.Link
	}
	return lookup
}

// Format 替换text中所有已知表单指称为对应链接
// 链接段整体跳过, 登记的链接自身含"form1a.pdf"之类的路径也不会被二次改写,
// 因此幂等: Format(Format(x)) == Format(x)
func Format(text string, lookup map[string]string) string {
	if len(lookup) == 0 {
		return text
	}
	var sb strings.Builder
	last := 0
	for _, span := range urlRe.FindAllStringIndex(text, -1) {
		sb.WriteString(replaceReferences(text[last:span[0]], lookup))
		sb.WriteString(text[span[0]:span[1]])
		last = span[1]
	}
	sb.WriteString(replaceReferences(text[last:], lookup))
	return sb.String()
}

// replaceReferences 单遍替换一段不含链接的文本, 未登记的标识符原样保留
func replaceReferences(segment string, lookup map[string]string) string {
	return referenceRe.ReplaceAllStringFunc(segment, func(ref string) string {
		id := strings.ToLower(referenceRe.FindStringSubmatch(ref)[1])
		if link, ok := lookup[id]; ok {
			return link
		}
		return ref
	})
}
