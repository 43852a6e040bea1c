// Package seed holds the compiled-in fallback content for the public site.
// The site must render from this catalog alone whenever the backend is down,
// so every accessor returns a fresh copy that callers may mutate.
package seed

import "github.com/TianMHDev/portfolio-panel/models"

var hero = models.Hero{
	Name:      "SEBASTIAN MARRIAGA",
	Role:      "BACKEND DEVELOPER JUNIOR",
	Manifesto: "CÓDIGO SÓLIDO, INTERFACES FUNCIONALES, RESULTADOS REALES",
	Location:  "Barranquilla, Colombia (Remoto / Híbrido)",
	Status:    "ACTUALMENTE: APRENDIENDO QUARKUS",
}

var about = models.About{
	Title: "PERFIL_HÍBRIDO",
	Description: `Soy un Backend Developer Junior con una visión integral del desarrollo web. Mi fortaleza reside en la lógica del servidor, bases de datos y APIs, complementada con habilidades en Frontend (Angular/HTML/CSS).

Esta versatilidad me permite construir soluciones completas, desde el "motor" hasta la interfaz, garantizando una comunicación fluida entre capas. Me defino por mi constancia, mentalidad de ingeniero y compromiso con la calidad.`,
	EnglishLevel:      "Inglés Técnico (Básico/Pre-Intermedio) - Lectura y escritura técnica.",
	CurrentlyLearning: "Quarkus",
	ProfileImage:      "https://avatars.githubusercontent.com/u/211703811?s=400&u=e09c4e6ffe4a2964a5092000a06af0ae8da045d8&v=4",
}

var techStack = []models.TechCategory{
	{
		Title:  models.CategoryLanguages,
		Skills: []string{"Java (Principal)", "JavaScript / TypeScript", "Python 3", "HTML5 & CSS3", "Angular (Nivel Básico)"},
	},
	{
		Title:  models.CategoryFrameworks,
		Skills: []string{"Spring Boot 3", "Node.js + Express", "JPA / Hibernate", "Manejo de APIs REST"},
	},
	{
		Title:  models.CategoryPersistence,
		Skills: []string{"PostgreSQL", "MySQL", "MongoDB (Nivel Básico)", "Diseño de Esquemas ER"},
	},
	{
		Title:  models.CategoryTooling,
		Skills: []string{"Git & GitHub", "Postman / Swagger", "JWT Auth", "Clean Code", "Arquitectura en Capas"},
	},
}

var mindset = []models.MindsetItem{
	{Title: "Visión Full Stack", Desc: "Capacidad para entender y conectar ambos lados de la aplicación (Cliente y Servidor)."},
	{Title: "Mentalidad de Aprendiz", Desc: "Disciplina y curiosidad para dominar nuevas tecnologías, ya sea en Back o Front."},
	{Title: "Enfoque en Calidad", Desc: "Código limpio y estructurado, tanto en la lógica de negocio como en la maquetación."},
	{Title: "Resolución de Problemas", Desc: "Enfoque lógico para descomponer requerimientos complejos en soluciones funcionales."},
}

var projects = []models.Project{
	{
		ID:          "1",
		Title:       "Open Book",
		Category:    "BACKEND / API",
		Stack:       []string{"JavaScript", "Node.js", "Express", "MySQL", "JWT Auth", "Open Library API"},
		Description: "API RESTful para el descubrimiento y gestión de libros, con ingesta masiva desde Open Library.",
		Problem:     "Sincronizar miles de libros desde una API externa garantizando integridad y bajo tiempo de respuesta.",
		Learning:    "Motores de ingesta masiva, transacciones SQL, Rate Limiting y limpieza de datos no estructurados.",
		Features: []string{
			"Sincronización automática con Open Library",
			"API RESTful con búsqueda avanzada y paginación",
			"Gestión de estados de lectura y favoritos",
			"Seguridad mediante Middleware y JWT",
		},
		GithubURL: "https://github.com/TianMHDev/OpenBook.git",
		LiveURL:   "https://openbook-7anq.onrender.com/",
		Images: []models.ProjectImage{
			{URL: "/projects/landingpageopenbook.webp", Caption: "Landing Page", Type: "screenshot"},
			{URL: "/projects/catalogosopenbook.webp", Caption: "Catálogo", Type: "screenshot"},
			{URL: "/projects/loginopenbook.webp", Caption: "Login", Type: "screenshot"},
			{URL: "/projects/registeropenbook.webp", Caption: "Registro", Type: "screenshot"},
		},
		Version: "1.1.0",
	},
	{
		ID:          "2",
		Title:       "Task Management System",
		Category:    "FULLSTACK / JAVA",
		Stack:       []string{"Java", "Spring Boot", "MySQL", "Docker", "Postman", "JWT Auth", "Arquitectura Hexagonal"},
		Description: "Gestión empresarial de proyectos: Backend en Spring Boot, Arquitectura Hexagonal y Frontend en Vanilla JS.",
		Problem:     "Desarrollar un sistema altamente desacoplado y escalable evitando las limitaciones de las capas tradicionales.",
		Learning:    "Implementación de Puertos y Adaptadores, independencia del dominio y optimización con Spring Cache.",
		Features: []string{
			"Autenticación robusta con JWT",
			"Contenerización con Docker & Cloud MySQL",
			"Arquitectura Hexagonal Pura",
			"Optimistic UI para respuesta instantánea",
		},
		GithubURL: "https://github.com/TianMHDev/Sistema-de-Gesti-n-de-Proyectos-y-Tareas.git",
		LiveURL:   "https://sistema-de-gesti-n-de-proyectos-y-t.vercel.app/",
		Images: []models.ProjectImage{
			{URL: "/projects/proyectostaskflow.webp", Caption: "Dashboard Proyectos", Type: "screenshot"},
			{URL: "/projects/tareastaskflow.webp", Caption: "Gestión de Tareas", Type: "screenshot"},
			{URL: "/projects/logintaskflow.webp", Caption: "Acceso", Type: "screenshot"},
			{URL: "/projects/registertaskflow.webp", Caption: "Registro de Equipo", Type: "screenshot"},
		},
		Version: "1.1.0",
	},
	{
		ID:          "3",
		Title:       "Vortex Incident",
		Category:    "BACKEND / JAVA / SPRING BOOT",
		Stack:       []string{"Java", "Spring Boot", "PostgreSQL", "Docker", "Postman", "JWT Auth", "Arquitectura Hexagonal"},
		Description: "Motor de gestión de incidentes con automatización de SLAs y clasificación de criticidad.",
		Problem:     "Gestionar ineficiencias mediante la automatización de prioridades y seguimiento de niveles de servicio.",
		Learning:    "Microservicios en Java con Arquitectura Hexagonal, garantizando desacoplamiento total y escalabilidad.",
		Features: []string{
			"Gestión automatizada de SLAs y prioridad",
			"Arquitectura Hexagonal (Domain-Centric)",
			"Persistencia relacional avanzada con PostgreSQL",
			"Infraestructura contenerizada con Docker",
		},
		GithubURL: "https://github.com/Vortex-Incidents/vortex-frontend-react.git",
		LiveURL:   "https://vortex-frontend-react.vercel.app/",
		Images: []models.ProjectImage{
			{URL: "/projects/landingpagevortex.webp", Caption: "Vortex Home", Type: "screenshot"},
			{URL: "/projects/loginvortex.webp", Caption: "Autenticación", Type: "screenshot"},
			{URL: "/projects/adminvortex.webp", Caption: "Panel Admin", Type: "screenshot"},
			{URL: "/projects/empleadovortex.webp", Caption: "Vista Empleado", Type: "screenshot"},
		},
		Version: "1.1.0",
	},
}

// Hero returns the seed landing-section content.
func Hero() models.Hero { return hero }

// About returns the seed narrative content.
func About() models.About { return about }

// TechStack returns a deep copy of the seed skill buckets.
func TechStack() []models.TechCategory {
	out := make([]models.TechCategory, len(techStack))
	for i, c := range techStack {
		out[i] = models.TechCategory{
			Title:  c.Title,
			Skills: append([]string(nil), c.Skills...),
		}
	}
	return out
}

// Mindset returns the work-culture cards.
func Mindset() []models.MindsetItem {
	return append([]models.MindsetItem(nil), mindset...)
}

// Projects returns a deep copy of the seed project list.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		cp := p
		cp.Stack = append([]string(nil), p.Stack...)
		cp.Features = append([]string(nil), p.Features...)
		cp.Images = append([]models.ProjectImage(nil), p.Images...)
		out[i] = cp
	}
	return out
}
