// File: detect.go
// Title: Language Detection
// Description: Detects which non-English languages a script snippet is
//              written in, using per-language keyword sets. Latin-script
//              languages are matched on word boundaries; non-Latin
//              scripts use substring matching since their scripts are
//              unambiguous. Also maps detected language sets to the
//              smallest regional bundle covering them.
// Version: v0.1.0
// Created: 2025-11-18

package scanner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SupportedLanguages lists every language detection knows about
var SupportedLanguages = []string{
	"en", "es", "pt", "fr", "de", "it", "vi",
	"pl", "ru", "uk",
	"ja", "zh", "ko",
	"ar",
	"hi", "bn",
	"th",
	"tr",
	"id", "sw", "qu", "tl",
}

// languageKeywords holds the native words whose presence indicates a
// language is in use. English is never detected; it is the default.
var languageKeywords = map[string][]string{
	"ja": {
		"トグル", "切り替え", "追加", "削除", "表示", "隠す", "非表示",
		"設定", "セット", "増加", "減少", "ログ", "出力",
		"クリック", "入力", "変更", "フォーカス",
		"もし", "繰り返し", "待つ", "待機",
		"私", "それ", "結果",
		"最初", "最後", "次", "前",
	},
	"ko": {
		"토글", "전환", "추가", "제거", "삭제", "표시", "숨기다",
		"설정", "증가", "감소", "로그",
		"클릭", "입력", "변경", "포커스",
		"만약", "반복", "대기",
		"나", "내", "그것", "결과",
		"첫번째", "마지막", "다음", "이전",
	},
	"zh": {
		"切换", "添加", "移除", "删除", "显示", "隐藏",
		"设置", "设定", "增加", "减少", "日志", "记录",
		"点击", "输入", "改变", "聚焦",
		"如果", "重复", "等待",
		"我", "它", "结果",
		"第一", "最后", "下一个", "上一个",
	},
	"ar": {
		"بدّل", "بدل", "أضف", "اضف", "أزل", "ازل", "احذف",
		"أظهر", "اظهر", "أخفِ", "اخف",
		"ضع", "اضع", "زِد", "أنقص",
		"عند", "نقر", "إدخال", "تغيير",
		"إذا", "كرر", "انتظر",
		"أنا", "هو", "النتيجة",
	},
	"es": {
		"alternar", "añadir", "agregar", "quitar", "eliminar",
		"mostrar", "ocultar", "esconder",
		"establecer", "fijar", "incrementar", "decrementar",
		"clic", "entrada", "cambio",
		"sino", "repetir", "esperar", "mientras",
		"yo", "ello", "resultado",
		"primero", "último", "siguiente", "anterior",
	},
	"pt": {
		"adicionar", "remover", "esconder",
		"definir", "clique", "mudança",
		"senão", "aguardar", "enquanto",
		"eu", "isso",
		"próximo",
	},
	"fr": {
		"basculer", "ajouter", "supprimer", "retirer",
		"afficher", "montrer", "cacher", "masquer",
		"définir", "incrémenter", "décrémenter",
		"cliquer", "saisie", "changement",
		"sinon", "répéter", "attendre", "pendant",
		"moi", "cela", "résultat",
		"premier", "dernier", "suivant", "précédent",
	},
	"de": {
		"umschalten", "hinzufügen", "entfernen", "löschen",
		"anzeigen", "zeigen", "verbergen", "verstecken",
		"setzen", "festlegen", "erhöhen", "verringern",
		"klick", "eingabe", "änderung",
		"wenn", "sonst", "wiederholen", "warten", "während",
		"ich", "ergebnis",
		"erste", "letzte", "nächste", "vorherige",
	},
	"tr": {
		"değiştir", "değistir", "ekle", "kaldır", "kaldir", "sil",
		"göster", "gizle", "sakla",
		"ayarla", "belirle", "arttır", "azalt",
		"tıklama", "tiklama", "giriş", "giris", "değişim", "degisim",
		"eğer", "eger", "yoksa", "tekrarla", "bekle", "süresince",
		"ben", "sonuç", "sonuc",
		"ilk", "son", "sonraki", "önceki", "onceki",
	},
	"id": {
		"alih", "beralih", "tambah", "hapus", "buang",
		"tampilkan", "sembunyikan",
		"atur", "tetapkan", "tambahkan", "kurangi",
		"klik", "masukan", "perubahan",
		"jika", "kalau", "ulangi", "tunggu", "selama",
		"saya", "itu", "hasil",
		"pertama", "terakhir", "berikutnya", "sebelumnya",
	},
	"sw": {
		"badilisha", "ongeza", "ondoa", "futa",
		"onyesha", "ficha",
		"weka", "sanidi", "ongezea", "punguza",
		"bofya", "ingizo", "badiliko",
		"ikiwa", "kama", "rudia", "subiri", "wakati",
		"mimi", "hiyo", "matokeo",
		"kwanza", "mwisho", "inayofuata", "iliyotangulia",
	},
	"qu": {
		"tikray", "yapay", "qichuy", "pichay",
		"rikuchiy", "pakay",
		"churay", "pisiyachiy",
		"ñit'iy", "yaykuchiy",
		"sichus", "mana", "kutipay", "suyay", "chaykama",
		"ñuqa", "chay", "lluqsisqa",
		"ñawpaq", "qhipa", "hamuq", "ñawpaqnin",
	},
	"it": {
		"commutare", "alternare", "aggiungere", "rimuovere", "eliminare",
		"mostrare", "nascondere", "impostare", "incrementare", "decrementare",
		"clic", "ingresso", "cambiamento",
		"altrimenti", "ripetere", "aspettare", "attendere", "mentre",
		"risultato",
		"primo", "ultimo", "successivo", "precedente",
	},
	"vi": {
		"chuyển đổi", "bật tắt", "thêm", "xóa", "gỡ bỏ",
		"hiển thị", "ẩn", "gán", "thiết lập", "tăng", "giảm",
		"kích hoạt", "gửi",
		"nếu", "không thì", "lặp lại", "chờ", "đợi", "trong khi",
		"kết quả",
		"đầu tiên", "cuối cùng", "tiếp theo", "trước",
	},
	"pl": {
		"przełącz", "przelacz", "dodaj", "usuń", "usun",
		"pokaż", "pokaz", "ukryj", "ustaw", "zwiększ", "zwieksz", "zmniejsz",
		"kliknięcie", "klikniecie", "wywołaj", "wywolaj", "wyślij", "wyslij",
		"jeśli", "jesli", "jeżeli", "jezeli", "inaczej", "powtórz", "powtorz",
		"czekaj", "poczekaj", "dopóki", "dopoki",
		"wynik",
		"pierwszy", "ostatni", "następny", "nastepny", "poprzedni",
	},
	"ru": {
		"переключить", "добавить", "удалить", "убрать",
		"показать", "скрыть", "установить", "увеличить", "уменьшить",
		"вызвать", "отправить",
		"если", "иначе", "повторить", "ждать", "пока",
		"результат",
		"первый", "последний", "следующий", "предыдущий",
	},
	"uk": {
		"перемкнути", "додати", "видалити", "прибрати",
		"показати", "сховати", "приховати", "встановити", "збільшити", "зменшити",
		"викликати", "надіслати",
		"якщо", "інакше", "повторити", "чекати", "поки",
		"результат",
		"перший", "останній", "наступний", "попередній",
	},
	"hi": {
		"टॉगल", "बदलें", "जोड़ें", "हटाएं", "मिटाएं",
		"दिखाएं", "छिपाएं", "सेट", "बढ़ाएं", "घटाएं",
		"ट्रिगर", "भेजें",
		"अगर", "यदि", "वरना", "दोहराएं", "प्रतीक्षा", "जब तक",
		"परिणाम",
		"पहला", "आखिरी", "अगला", "पिछला",
	},
	"bn": {
		"টগল", "পরিবর্তন", "যোগ", "সরান", "মুছুন",
		"দেখান", "লুকান", "সেট", "বৃদ্ধি", "হ্রাস",
		"ট্রিগার", "পাঠান",
		"যদি", "নতুবা", "পুনরাবৃত্তি", "অপেক্ষা", "যতক্ষণ",
		"ফলাফল",
		"প্রথম", "শেষ", "পরবর্তী", "আগের",
	},
	"th": {
		"สลับ", "เพิ่ม", "ลบ", "ลบออก",
		"แสดง", "ซ่อน", "ตั้ง", "กำหนด", "เพิ่มค่า", "ลดค่า",
		"ทริกเกอร์", "ส่ง",
		"ถ้า", "หาก", "ไม่งั้น", "ทำซ้ำ", "รอ", "ในขณะที่",
		"ผลลัพธ์",
		"แรก", "สุดท้าย", "ถัดไป", "ก่อนหน้า",
	},
	"tl": {
		"palitan", "itoggle", "idagdag", "magdagdag", "alisin", "tanggalin",
		"ipakita", "magpakita", "itago", "magtago",
		"itakda", "magtakda", "dagdagan", "taasan", "bawasan", "ibaba",
		"magpatugtog", "ipadala", "magpadala",
		"kung", "kapag", "kung_hindi", "kundi", "ulitin", "paulit-ulit",
		"maghintay", "hintay", "habang",
	},
}

// nonLatinLanguages are the languages whose scripts are distinctive
// enough that substring matching suffices
var nonLatinLanguages = map[string]bool{
	"ja": true, "ko": true, "zh": true, "ar": true,
	"ru": true, "uk": true, "hi": true, "bn": true, "th": true,
}

// regions maps regional bundle names to the languages they cover
var regions = map[string][]string{
	"western":         {"en", "es", "pt", "fr", "de", "it"},
	"east-asian":      {"ja", "zh", "ko"},
	"southeast-asian": {"id", "vi", "th", "tl"},
	"south-asian":     {"hi", "bn"},
	"slavic":          {"pl", "ru", "uk"},
	"priority":        {"en", "es", "pt", "fr", "de", "it", "ja", "zh", "ko", "ar", "tr", "id", "vi"},
	"all":             SupportedLanguages,
}

// latinDetectors holds the precompiled word-boundary matchers for
// Latin-script languages, built once at package load
var latinDetectors = buildLatinDetectors()

func buildLatinDetectors() map[string][]*regexp.Regexp {
	detectors := make(map[string][]*regexp.Regexp, len(languageKeywords))
	for lang, keywords := range languageKeywords {
		if nonLatinLanguages[lang] {
			continue
		}
		patterns := make([]*regexp.Regexp, 0, len(keywords))
		for _, keyword := range keywords {
			// Very short keywords produce too many false positives
			if utf8.RuneCountInString(keyword) <= 2 {
				continue
			}
			patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(keyword))+`\b`))
		}
		detectors[lang] = patterns
	}
	return detectors
}

// DetectLanguages reports which non-English languages appear in a
// script snippet. English is never reported since it is the default.
func DetectLanguages(script string) map[string]bool {
	detected := make(map[string]bool)
	lower := strings.ToLower(script)

	for lang, keywords := range languageKeywords {
		if nonLatinLanguages[lang] {
			for _, keyword := range keywords {
				if strings.Contains(script, keyword) {
					detected[lang] = true
					break
				}
			}
			continue
		}
		for _, pattern := range latinDetectors[lang] {
			if pattern.MatchString(lower) {
				detected[lang] = true
				break
			}
		}
	}

	return detected
}

// OptimalRegion returns the smallest regional bundle covering every
// detected language, or "" when no languages were detected
func OptimalRegion(languages map[string]bool) string {
	if len(languages) == 0 {
		return ""
	}

	// Smallest bundles first, by typical bundle size
	for _, region := range []string{"east-asian", "south-asian", "slavic", "southeast-asian", "western", "priority"} {
		if coveredBy(languages, regions[region]) {
			return region
		}
	}
	return "all"
}

func coveredBy(languages map[string]bool, bundle []string) bool {
	for lang := range languages {
		found := false
		for _, b := range bundle {
			if b == lang {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
