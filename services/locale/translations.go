package locale

// translations holds the static UI string tables per language. The tables
// cover the keys used by the marketplace surface; missing keys fall back to
// the key itself in Translate.
var translations = map[Language]map[string]string{
	LangArabic: {
		"home":     "الرئيسية",
		"services": "الخدمات",
		"pricing":  "الأسعار",
		"contact":  "اتصل بنا",
		"bookings": "الحجوزات",
		"profile":  "الملف الشخصي",

		"search":  "بحث",
		"filter":  "فلتر",
		"all":     "الكل",
		"loading": "جاري التحميل...",
		"error":   "خطأ",
		"success": "نجح",

		"postService":  "انشر خدمتك",
		"findServices": "ابحث عن الخدمات",
		"serviceType":  "نوع الخدمة",
		"onSite":       "في الموقع",
		"online":       "عبر الإنترنت",
		"category":     "الفئة",
		"location":     "الموقع",

		"popularServices":       "الخدمات الشائعة",
		"noServicesAvailable":   "لا توجد خدمات متاحة حتى الآن",
		"viewAllServices":       "عرض جميع الخدمات",
		"heroTitle":             "اعثر على أفضل مقدمي الخدمات في تونس",
		"heroSubtitle":          "اكتشف واحجز خدمات عالية الجودة من محترفين معتمدين في منطقتك",
		"bookNow":               "احجز الآن",
		"joinAsProfessional":    "انضم كمحترف",
		"verifiedProfessionals": "محترفون معتمدون",
		"serviceCoverage":       "تغطية الخدمة",
		"availableAcross":       "متاح في جميع أنحاء",
		"tunisia":               "تونس",
		"jobsCompleted":         "مهمة مكتملة",
	},
	LangFrench: {
		"home":     "Accueil",
		"services": "Services",
		"pricing":  "Tarifs",
		"contact":  "Contact",
		"bookings": "Réservations",
		"profile":  "Profil",

		"search":  "Rechercher",
		"filter":  "Filtres",
		"all":     "Tous",
		"loading": "Chargement...",
		"error":   "Erreur",
		"success": "Succès",

		"postService":  "Publier votre service",
		"findServices": "Trouver des services",
		"serviceType":  "Type de service",
		"onSite":       "Sur site",
		"online":       "En ligne",
		"category":     "Catégorie",
		"location":     "Lieu",

		"popularServices":       "Services Populaires",
		"noServicesAvailable":   "Aucun service disponible pour le moment",
		"viewAllServices":       "Voir tous les services",
		"heroTitle":             "Trouvez les meilleurs prestataires de services en Tunisie",
		"heroSubtitle":          "Découvrez et réservez des services de qualité auprès de professionnels certifiés dans votre région",
		"bookNow":               "Réserver maintenant",
		"joinAsProfessional":    "Rejoindre en tant que professionnel",
		"verifiedProfessionals": "Professionnels Vérifiés",
		"serviceCoverage":       "Couverture de Service",
		"availableAcross":       "Disponible à travers",
		"tunisia":               "la Tunisie",
		"jobsCompleted":         "travaux terminés",
	},
	LangEnglish: {
		"home":     "Home",
		"services": "Services",
		"pricing":  "Pricing",
		"contact":  "Contact",
		"bookings": "Bookings",
		"profile":  "Profile",

		"search":  "Search",
		"filter":  "Filters",
		"all":     "All",
		"loading": "Loading...",
		"error":   "Error",
		"success": "Success",

		"postService":  "Post Your Service",
		"findServices": "Find Services",
		"serviceType":  "Service Type",
		"onSite":       "On-site",
		"online":       "Online",
		"category":     "Category",
		"location":     "Location",

		"popularServices":       "Popular Services",
		"noServicesAvailable":   "No services available yet",
		"viewAllServices":       "View All Services",
		"heroTitle":             "Find the Best Service Providers in Tunisia",
		"heroSubtitle":          "Discover and book quality services from certified professionals in your area",
		"bookNow":               "Book Now",
		"joinAsProfessional":    "Join as a Professional",
		"verifiedProfessionals": "Verified Professionals",
		"serviceCoverage":       "Service Coverage",
		"availableAcross":       "Available Across",
		"tunisia":               "Tunisia",
		"jobsCompleted":         "jobs completed",
	},
}
