package generator

import "github.com/verte-zerg/slowtype/internal/model"

var builtinWords = map[model.Language][]string{
	model.LangEnglish: englishWords,
	model.LangThai:    thaiWords,
}

var builtinQuotes = map[model.Language][]string{
	model.LangEnglish: englishQuotes,
	model.LangThai:    thaiQuotes,
}

var englishWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "I", "it", "for",
	"not", "on", "with", "he", "as", "you", "do", "at", "this", "but", "his", "by",
	"from", "they", "we", "say", "her", "she", "or", "an", "will", "my", "one", "all",
	"would", "there", "their", "what", "so", "up", "out", "if", "about", "who", "get", "which",
	"go", "me", "when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other", "than", "then",
	"now", "look", "only", "come", "its", "over", "think", "also", "back", "after", "use", "two",
	"how", "our", "work", "first", "well", "way", "even", "new", "want", "because", "any", "these",
	"give", "day", "most", "us",
}

var thaiWords = []string{
	"เป็น", "มี", "ไป", "มา", "อยู่", "นี้", "ที่", "กับ", "ใน", "ได้",
	"เขา", "เรา", "เธอ", "ใคร", "อะไร", "อย่างไร", "เมื่อไหร่", "ทำ", "ดู", "กิน",
	"เรียน", "ทำงาน", "ดี", "ใหญ่", "เล็ก", "สวย", "เร็ว", "ช้า", "ใหม่", "เก่า",
	"มาก", "น้อย", "วัน", "เดือน", "ปี", "เวลา", "คน", "บ้าน", "อาหาร", "น้ำ",
	"เงิน", "หนังสือ", "รถ", "เมือง", "ประเทศ", "โลก", "ครอบครัว", "เพื่อน", "พ่อ", "แม่",
	"ลูก", "ครู", "นักเรียน", "งาน", "โรงเรียน", "มหาวิทยาลัย", "ที่", "หรือ", "แต่", "เพราะ",
	"ถ้า", "แล้ว", "ก็", "จะ", "ไม่", "ยัง", "อีก", "ทุก", "บาง", "มาก",
	"น้อย", "เลย", "เท่านั้น", "ด้วย", "กัน", "เอง", "เช่น", "เหมือน", "ต่าง", "กัน",
	"จริง", "แน่นอน", "อาจ", "ต้อง", "ควร", "สามารถ", "ชอบ", "รัก", "คิด", "รู้",
	"เข้าใจ", "บอก", "ถาม", "ตอบ", "เปิด", "ปิด", "เดิน", "นั่ง", "นอน", "ยืน",
	"วิ่ง", "อ่าน", "เขียน", "พูด", "ฟัง", "รอ", "หา", "ให้", "รับ", "ส่ง",
	"ซื้อ", "ขาย", "ใช้", "สร้าง", "เปลี่ยน", "เพิ่ม", "ลด", "เริ่ม", "จบ", "ต่อไป",
	"ก่อน", "หลัง", "ระหว่าง", "ข้าง", "บน", "ล่าง", "ใน", "นอก", "ใกล้", "ไกล",
	"สูง", "ต่ำ", "ยาว", "สั้น", "กว้าง", "แคบ", "หนา", "บาง", "หนัก", "เบา",
	"ร้อน", "เย็น", "สว่าง", "มืด", "สวย", "น่าเกลียด", "ง่าย", "ยาก", "ดี", "แย่",
	"ถูก", "ผิด", "จริง", "เท็จ",
}

var englishQuotes = []string{
	"Breathe in calm, breathe out stress.",
	"Slow and steady wins the race.",
	"Peace comes from within.",
	"One key at a time, one word at a time.",
	"Patience is the key to clarity.",
}

var thaiQuotes = []string{
	"หายใจเข้า สบาย หายใจออก ปล่อยความเครียด",
	"ช้าและมั่นคงชนะการแข่งขัน",
	"ความสงบมาจากภายใน",
	"ทีละปุ่ม ทีละคำ",
	"ความอดทนคือกุญแจสู่ความชัดเจน",
}
