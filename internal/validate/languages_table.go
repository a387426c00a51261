package validate

// supportedLanguages lists every accepted language code with its display
// name, in display order.
var supportedLanguages = []Language{
	{Code: "zh", Name: "Chinese"},
	{Code: "en", Name: "English"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "de", Name: "German"},
	{Code: "fr", Name: "French"},
	{Code: "ru", Name: "Russian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "es", Name: "Spanish"},
	{Code: "it", Name: "Italian"},
	{Code: "tl", Name: "Tagalog (Filipino)"},
	{Code: "nl", Name: "Dutch (Netherlands)"},
	{Code: "nl_be", Name: "Dutch (Flemish - Belgium)"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
	{Code: "bn", Name: "Bengali"},
	{Code: "pa", Name: "Punjabi (Gurmukhi)"},
	{Code: "ur", Name: "Urdu"},
	{Code: "tr", Name: "Turkish"},
	{Code: "pl", Name: "Polish"},
	{Code: "th", Name: "Thai"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "sv", Name: "Swedish"},
	{Code: "da", Name: "Danish"},
	{Code: "no", Name: "Norwegian"},
	{Code: "fi", Name: "Finnish"},
	{Code: "el", Name: "Greek"},
	{Code: "he", Name: "Hebrew"},
	{Code: "cs", Name: "Czech"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "ro", Name: "Romanian"},
	{Code: "bg", Name: "Bulgarian"},
	{Code: "hr", Name: "Croatian"},
	{Code: "sr", Name: "Serbian"},
	{Code: "sk", Name: "Slovak"},
	{Code: "sl", Name: "Slovenian"},
	{Code: "et", Name: "Estonian"},
	{Code: "lv", Name: "Latvian"},
	{Code: "lt", Name: "Lithuanian"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "mk", Name: "Macedonian"},
	{Code: "sq", Name: "Albanian"},
	{Code: "hy", Name: "Armenian"},
	{Code: "ka", Name: "Georgian"},
	{Code: "am", Name: "Amharic"},
	{Code: "sw", Name: "Swahili"},
	{Code: "zu", Name: "Zulu"},
	{Code: "af", Name: "Afrikaans"},
	{Code: "is", Name: "Icelandic"},
	{Code: "mt", Name: "Maltese"},
	{Code: "cy", Name: "Welsh"},
	{Code: "ga", Name: "Irish"},
	{Code: "gd", Name: "Scots Gaelic"},
	{Code: "eu", Name: "Basque"},
	{Code: "ca", Name: "Catalan"},
	{Code: "gl", Name: "Galician"},
	{Code: "ast", Name: "Asturian"},
	{Code: "zh_hans", Name: "Chinese (Simplified)"},
	{Code: "zh_hant", Name: "Chinese (Traditional)"},
	{Code: "yue", Name: "Cantonese"},
	{Code: "pt_br", Name: "Portuguese (Brazil)"},
	{Code: "pt_pt", Name: "Portuguese (Portugal)"},
	{Code: "fr_ca", Name: "French (Canada)"},
	{Code: "es_mx", Name: "Spanish (Mexico)"},
	{Code: "an", Name: "Aragonese"},
	{Code: "oc", Name: "Occitan"},
	{Code: "fy", Name: "Frisian"},
	{Code: "li", Name: "Limburgish"},
	{Code: "lux", Name: "Luxembourgish"},
	{Code: "nds", Name: "Low German"},
	{Code: "smj", Name: "Sami (North)"},
	{Code: "fo", Name: "Faroese"},
	{Code: "be", Name: "Belarusian"},
	{Code: "bs", Name: "Bosnian"},
	{Code: "hsb", Name: "Upper Sorbian"},
	{Code: "dsb", Name: "Lower Sorbian"},
	{Code: "as", Name: "Assamese"},
	{Code: "mr", Name: "Marathi"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "te", Name: "Telugu"},
	{Code: "ta", Name: "Tamil"},
	{Code: "or", Name: "Odia (Oriya)"},
	{Code: "si", Name: "Sinhala"},
	{Code: "ne", Name: "Nepali"},
	{Code: "bh", Name: "Bhojpuri"},
	{Code: "mai", Name: "Maithili"},
	{Code: "rw", Name: "Kinyarwanda"},
	{Code: "fa", Name: "Persian (Farsi)"},
	{Code: "ps", Name: "Pashto"},
	{Code: "tg", Name: "Tajik"},
	{Code: "ku", Name: "Kurdish (Kurmanji)"},
	{Code: "ckb", Name: "Kurdish (Sorani)"},
	{Code: "os", Name: "Ossetian"},
	{Code: "kk", Name: "Kazakh"},
	{Code: "ky", Name: "Kyrgyz"},
	{Code: "uz", Name: "Uzbek"},
	{Code: "az", Name: "Azerbaijani"},
	{Code: "tk", Name: "Turkmen"},
	{Code: "ug", Name: "Uyghur"},
	{Code: "tuv", Name: "Tuvan"},
	{Code: "sah", Name: "Yakut"},
	{Code: "ba", Name: "Bashkir"},
	{Code: "cv", Name: "Chuvash"},
	{Code: "kum", Name: "Kumyk"},
	{Code: "tt", Name: "Tatar"},
	{Code: "xal", Name: "Kalmyk"},
	{Code: "yo", Name: "Yoruba"},
	{Code: "ig", Name: "Igbo"},
	{Code: "ha", Name: "Hausa"},
	{Code: "sn", Name: "Shona"},
	{Code: "ts", Name: "Tsonga"},
	{Code: "tn", Name: "Tswana"},
	{Code: "ss", Name: "Swati"},
	{Code: "nr", Name: "Ndebele (South)"},
	{Code: "xh", Name: "Xhosa"},
	{Code: "om", Name: "Oromo"},
	{Code: "ti", Name: "Tigrinya"},
	{Code: "so", Name: "Somali"},
	{Code: "mg", Name: "Malagasy"},
	{Code: "ny", Name: "Chichewa"},
	{Code: "ln", Name: "Lingala"},
	{Code: "kg", Name: "Kongo (Kikongo)"},
	{Code: "tw", Name: "Twi"},
	{Code: "ee", Name: "Ewe"},
	{Code: "ff", Name: "Fulani"},
	{Code: "wo", Name: "Wolof"},
	{Code: "kr", Name: "Kanuri"},
	{Code: "bm", Name: "Bambara"},
	{Code: "ki", Name: "Kikuyu (Gikuyu)"},
	{Code: "mer", Name: "Meru"},
	{Code: "dinka", Name: "Dinka"},
	{Code: "nuer", Name: "Nuer"},
	{Code: "teo", Name: "Teso"},
	{Code: "ach", Name: "Acholi"},
	{Code: "luy", Name: "Luyia"},
	{Code: "kam", Name: "Kamba"},
	{Code: "kln", Name: "Kalenjin"},
	{Code: "guu", Name: "Gusii"},
	{Code: "id", Name: "Indonesian"},
	{Code: "ms", Name: "Malay"},
	{Code: "ms_jawi", Name: "Malay (Jawi)"},
	{Code: "jv2", Name: "Javanese"},
	{Code: "su2", Name: "Sundanese"},
	{Code: "mad2", Name: "Madurese"},
	{Code: "min2", Name: "Minangkabau"},
	{Code: "ace", Name: "Acehnese"},
	{Code: "bjn", Name: "Banjarese"},
	{Code: "bbc", Name: "Batak Toba"},
	{Code: "btx", Name: "Batak Karo"},
	{Code: "bts", Name: "Batak Simalungun"},
	{Code: "bug", Name: "Buginese"},
	{Code: "mak", Name: "Makassar"},
	{Code: "tet", Name: "Tetum"},
	{Code: "ceb", Name: "Cebuano"},
	{Code: "hil", Name: "Hiligaynon"},
	{Code: "war", Name: "Waray"},
	{Code: "bik", Name: "Bikol"},
	{Code: "pam", Name: "Kapampangan"},
	{Code: "pag", Name: "Pangasinan"},
	{Code: "iban", Name: "Iban"},
	{Code: "ilo", Name: "Ilocano"},
	{Code: "fj", Name: "Fijian"},
	{Code: "to", Name: "Tongan"},
	{Code: "sm", Name: "Samoan"},
	{Code: "haw2", Name: "Hawaiian"},
	{Code: "mh", Name: "Marshallese"},
	{Code: "gil", Name: "Gilbertese"},
	{Code: "tvl", Name: "Tuvaluan"},
	{Code: "pih", Name: "Pitcairn-Norfolk"},
	{Code: "nah", Name: "Nahuatl (Eastern Huasteca)"},
	{Code: "may", Name: "Yucatec Maya"},
	{Code: "quz", Name: "Quechua"},
	{Code: "aym", Name: "Aymara"},
	{Code: "gar", Name: "Garifuna"},
	{Code: "cr", Name: "Cree"},
	{Code: "iu", Name: "Inuktut (Syllabics)"},
	{Code: "iu_latn", Name: "Inuktut (Latin)"},
	{Code: "oj", Name: "Ojibwe"},
	{Code: "nav", Name: "Navajo"},
	{Code: "chr", Name: "Cherokee"},
	{Code: "mus", Name: "Muskogean"},
	{Code: "ab", Name: "Abkhaz"},
	{Code: "av", Name: "Avar"},
	{Code: "che", Name: "Chechen"},
	{Code: "lez", Name: "Lezgi"},
	{Code: "ddo", Name: "Dargwa"},
	{Code: "inh", Name: "Ingush"},
	{Code: "lbe", Name: "Lak"},
	{Code: "tab", Name: "Tabasaran"},
	{Code: "agx", Name: "Aghul"},
	{Code: "rut", Name: "Rutul"},
	{Code: "tsz", Name: "Purepecha"},
	{Code: "brx", Name: "Bodo"},
	{Code: "kok", Name: "Konkani"},
	{Code: "tmx", Name: "Tulu"},
	{Code: "bo", Name: "Tibetan"},
	{Code: "dz", Name: "Dzongkha"},
	{Code: "my", Name: "Myanmar (Burmese)"},
	{Code: "new", Name: "Nepalbhasa (Newari)"},
	{Code: "mni", Name: "Meiteilon (Manipuri)"},
	{Code: "kha", Name: "Khasi"},
	{Code: "lep", Name: "Lepcha"},
	{Code: "km", Name: "Khmer"},
	{Code: "lo", Name: "Lao"},
	{Code: "mnw", Name: "Mon"},
	{Code: "kxm", Name: "Northern Khmer"},
	{Code: "pcc", Name: "Bouyei"},
	{Code: "blt", Name: "Balti"},
	{Code: "lu", Name: "Lü"},
	{Code: "khb", Name: "Tai Lü"},
	{Code: "shn", Name: "Shan"},
	{Code: "tdd", Name: "Tai Nüa"},
	{Code: "hmn", Name: "Hmong"},
	{Code: "mww", Name: "Hmong Daw"},
	{Code: "bl", Name: "Bali"},
	{Code: "reo", Name: "Maori"},
	{Code: "mah", Name: "Marshallese"},
	{Code: "chm", Name: "Chamorro"},
	{Code: "pohn", Name: "Pohnpeian"},
	{Code: "yap", Name: "Yapese"},
	{Code: "chuuk", Name: "Chuukese"},
	{Code: "kos", Name: "Kosraean"},
	{Code: "mok", Name: "Mokilese"},
	{Code: "pala", Name: "Palauan"},
	{Code: "eo", Name: "Esperanto"},
	{Code: "la2", Name: "Latin"},
	{Code: "sjn", Name: "Sindarin"},
	{Code: "qya", Name: "Quenya"},
	{Code: "tlh", Name: "Klingon"},
	{Code: "art_lojban", Name: "Lojban"},
	{Code: "ia", Name: "Interlingua"},
	{Code: "vol", Name: "Volapük"},
	{Code: "ido", Name: "Ido"},
	{Code: "nov", Name: "Novial"},
	{Code: "toki", Name: "Toki Pona"},
	{Code: "grc", Name: "Ancient Greek"},
	{Code: "got", Name: "Gothic"},
	{Code: "ang", Name: "Old English"},
	{Code: "non", Name: "Old Norse"},
	{Code: "peo", Name: "Old Persian"},
	{Code: "pal", Name: "Pahlavi"},
	{Code: "sog", Name: "Sogdian"},
	{Code: "khot", Name: "Khotanese"},
	{Code: "asl", Name: "American Sign Language"},
	{Code: "bsl", Name: "British Sign Language"},
	{Code: "fsl", Name: "French Sign Language"},
	{Code: "dsl", Name: "German Sign Language"},
	{Code: "isl2", Name: "International Sign Language"},
	{Code: "jsl", Name: "Japanese Sign Language"},
	{Code: "ksl", Name: "Korean Sign Language"},
	{Code: "csl", Name: "Chinese Sign Language"},
	{Code: "br", Name: "Breton"},
	{Code: "co", Name: "Corsican"},
	{Code: "fur", Name: "Friulian"},
	{Code: "lmo", Name: "Lombard"},
	{Code: "lij", Name: "Ligurian"},
	{Code: "eml", Name: "Emilian-Romagnol"},
	{Code: "srd", Name: "Sardinian"},
	{Code: "sic", Name: "Sicilian"},
	{Code: "nap", Name: "Neapolitan"},
	{Code: "vec", Name: "Venetian"},
	{Code: "rg", Name: "Romagnol"},
	{Code: "ht", Name: "Haitian Creole"},
	{Code: "gcf", Name: "Guadeloupean Creole"},
	{Code: "mfe", Name: "Mauritian Creole"},
	{Code: "ses", Name: "Seychellois Creole"},
	{Code: "pdc", Name: "Pennsylvania German"},
	{Code: "tpi", Name: "Tok Pisin"},
	{Code: "bis", Name: "Bislama"},
	{Code: "pij", Name: "Nigerian Pidgin"},
	{Code: "kri", Name: "Krio"},
	{Code: "rom", Name: "Romani"},
	{Code: "jdt", Name: "Judeo-Tat"},
	{Code: "jpr", Name: "Judeo-Persian"},
	{Code: "ydd", Name: "Eastern Yiddish"},
	{Code: "yih", Name: "Western Yiddish"},
	{Code: "lad", Name: "Ladino"},
	{Code: "mul", Name: "Multiple languages"},
	{Code: "und", Name: "Undetermined"},
	{Code: "zxx", Name: "No linguistic content"},
	{Code: "mis", Name: "Uncoded languages"},
}
