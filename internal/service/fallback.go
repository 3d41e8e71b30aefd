// Package service 包含了应用的核心业务逻辑。
package service

import (
	"fmt"
	"roasthub-go/internal/model"
)

// fallbackTemplate 是一条兜底推文的模板，text 中的 %s 会被话题替换。
type fallbackTemplate struct {
	text      string
	viral     int
	relatable int
	savage    int
	brutal    int
	reason    string
}

// 固定 10 条模板。模型不可用、未配置或输出不可解析时使用，
// 保证生成接口永远有内容可返回。
var fallbackTemplates = [10]fallbackTemplate{
	{
		text:      "Yaar %s dekh ke lagta hai TV serial ke plot twists zyada believable hain. Slay! 🔥",
		viral:     9,
		relatable: 8,
		savage:    7,
		brutal:    8,
		reason:    "Reality TV roast with a desi twist that lands every time",
	},
	{
		text:      "%s se better toh mausi ke WhatsApp good morning forwards hain. At least woh effort toh hai! 💀",
		viral:     8,
		relatable: 9,
		savage:    8,
		brutal:    7,
		reason:    "Family WhatsApp humor with maximum shareability",
	},
	{
		text:      "%s pe discussion aisa hai jaise remake ko original se compare karna. Painful, no cap! 🎬",
		viral:     7,
		relatable: 9,
		savage:    8,
		brutal:    8,
		reason:    "Bollywood remake roast paired with current slang",
	},
	{
		text:      "%s ki halat aisi hai jaise last over mein 20 runs chahiye aur strike tail-ender ke paas hai. 🏏",
		viral:     8,
		relatable: 8,
		savage:    8,
		brutal:    7,
		reason:    "Cricket pressure analogy every Indian fan has lived through",
	},
	{
		text:      "%s dekh ke bas ek hi dialogue yaad aata hai: 'Rishte mein toh hum tumhare baap lagte hain!' Iconic! ✨",
		viral:     9,
		relatable: 7,
		savage:    9,
		brutal:    8,
		reason:    "Classic Bollywood dialogue drop with savage energy",
	},
	{
		text:      "%s ki quality bilkul canteen ki chai jaisi hai - dikhne mein strong, taste mein zero. Basic! ☕",
		viral:     8,
		relatable: 9,
		savage:    7,
		brutal:    6,
		reason:    "College canteen reference that hits home for every student",
	},
	{
		text:      "%s pe meme banane walon ko seedha Oscar do yaar, itni creativity kahin aur nahi milegi. 🏆",
		viral:     9,
		relatable: 8,
		savage:    6,
		brutal:    5,
		reason:    "Meme culture appreciation with strong viral potential",
	},
	{
		text:      "%s bilkul masala movie jaisa hai - logic zero, drama full on. Bhai vibes only! 💃",
		viral:     8,
		relatable: 9,
		savage:    7,
		brutal:    6,
		reason:    "Masala film roast that every cinephile will relate to",
	},
	{
		text:      "%s ki hype India-Pakistan match jaisi thi, result nikla warm-up game jaisa. Let down! 😂",
		viral:     9,
		relatable: 8,
		savage:    8,
		brutal:    7,
		reason:    "Tournament hype analogy with perfect desi context",
	},
	{
		text:      "%s dekh ke confirm ho gaya - humein drama chahiye, chahe real life mein ho ya timeline pe. 🎭",
		viral:     8,
		relatable: 9,
		savage:    7,
		brutal:    6,
		reason:    "Meta commentary on desi social media behavior",
	},
}

// FallbackTweets 返回 10 条确定性的兜底推文。
// 相同话题的两次调用产出完全一致；话题原样插值，不做转义。
func FallbackTweets(topic string) model.TweetItems {
	items := make(model.TweetItems, 0, len(fallbackTemplates))
	for _, t := range fallbackTemplates {
		items = append(items, model.TweetItem{
			Text:      fmt.Sprintf(t.text, topic),
			Viral:     t.viral,
			Relatable: t.relatable,
			Savage:    t.savage,
			Brutal:    t.brutal,
			Reason:    t.reason,
		})
	}
	return items
}
