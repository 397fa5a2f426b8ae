package nlu

import "github.com/sukseskontraktor/rental-assistant/internal/domain"

// keywordRule binds one intent to its keyword vocabulary. Rules are evaluated
// in order and the first match wins, so price_sewa must stay ahead of booking
// ("berapa sewa" would otherwise be read as a booking request).
type keywordRule struct {
	Intent   domain.Intent
	Keywords []string
	// Strict rules only accept near-exact token matches. Used for the short
	// confirmation and greeting vocabularies where a loose ratio lets tokens
	// like "ga" collide with unrelated two-letter keywords.
	Strict bool
}

var priceSewaPatterns = []string{
	"berapa sewa", "sewa berapa", "biaya sewa", "tarif sewa", "harga sewa",
}

var priceKeywords = []string{
	"harga", "biaya", "tarif", "ongkos", "bayaran", "total harga", "total biaya", "biayanya",
	"harga berapa", "berapa harganya", "harganya", "harga nya", "harga brp", "harga dong", "harga min",
	"price", "cost", "fee", "charge", "how much", "rate", "pricing", "worth",
}

var bookingKeywords = []string{
	"booking", "pesan", "pemesanan", "rental", "reservasi", "ambil",
	"sewain", "nyewa", "nyewa dong", "pesan dong", "pesen", "pengen sewa", "pengen booking",
	"sewain ga", "bisa booking", "pesanan", "memesan", "pemesan",
	"rent", "book", "reserve", "order", "take", "get", "renting", "hire", "lease",
}

var stockKeywords = []string{
	"stok", "tersedia", "ketersediaan", "jumlah", "sisa", "ready", "ada", "masih ada",
	"stoknya", "readykah", "masih ready", "ready ga", "ready nggak", "ada nggak",
	"stock", "available", "availability", "in stock", "have", "left", "remain",
}

var closingKeywords = []string{
	"baiklah", "okey", "oke", "ok", "ya sudah", "baik", "sip", "mantap", "setuju",
	"makasih", "terimakasih min", "terima kasih",
	"okedeh", "okelah", "yoi", "cus", "gas", "gaskan", "lanjutkan", "siap", "siapp", "sip lah",
	"alright", "okay", "okayy", "fine", "deal", "sounds good", "go ahead",
}

var closingConfirmationKeywords = []string{
	"sudah", "enggak", "tidak", "nggak", "ga", "gak", "cukup", "oke", "oke deh", "tidak jadi",
	"udah", "stop", "berhenti", "kelar",
}

var complaintKeywords = []string{
	"rusak", "bermasalah", "error", "tidak berfungsi", "gagal", "kerusakan", "komplain",
	"problem", "issue", "gangguan", "tidak bisa", "keluhan", "laporan",
	"belum sampai", "lama", "ditunda", "kapan datang", "kapan sampai",
	"mogok", "macet", "ngadat",
}

var greetingKeywords = []string{
	"halo", "hai", "hallo", "selamat pagi", "selamat siang", "selamat sore", "selamat malam",
	"hey", "hi", "hello", "apa kabar", "apa kabarnya",
}

var keywordRules = []keywordRule{
	{Intent: domain.Intent_PriceSewa, Keywords: priceSewaPatterns},
	{Intent: domain.Intent_AskPrice, Keywords: priceKeywords},
	{Intent: domain.Intent_Booking, Keywords: bookingKeywords},
	{Intent: domain.Intent_CheckStock, Keywords: stockKeywords},
	{Intent: domain.Intent_ClosingKeyword, Keywords: closingKeywords},
	{Intent: domain.Intent_ClosingConfirmation, Keywords: closingConfirmationKeywords, Strict: true},
	{Intent: domain.Intent_Complaint, Keywords: complaintKeywords},
	{Intent: domain.Intent_Greeting, Keywords: greetingKeywords, Strict: true},
}

// listAllVocabulary holds the phrases that ask for the full equipment roster,
// in formal, informal, and mixed Indonesian/English variants.
var listAllVocabulary = []string{
	"apa saja", "apa aja", "list", "daftar", "semua", "semuanya",
	"semua alat", "alat apa saja", "alat apa aja", "seluruh alat",
	"seluruhnya", "keseluruhan alat", "semua jenis alat", "jenis alat",
	"daftar alat", "list alat", "macam alat", "macam-macam alat",

	"ada apa aja", "ada apa saja", "apa-apa aja", "apa-apa saja",
	"alatnya apa aja", "alatnya apa saja", "unit apa aja", "unit apa saja",
	"list semua", "list lengkap", "daftar lengkap", "list full", "full list",

	"list tools", "tools apa aja", "tools apa saja", "equipment list",
	"equipment apa aja", "equipment apa saja", "alat berat apa aja",
	"alat berat apa saja", "list equipment", "unit tersedia", "semua unit",
	"unit yang ada", "stok alat", "stok semua",
}
