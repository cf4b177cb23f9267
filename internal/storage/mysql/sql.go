package mysql

// schema is applied in order by Migrate. Nullable references detach with
// ON DELETE SET NULL; rooms cannot outlive their hotel.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS locations (
  id             CHAR(36)      NOT NULL PRIMARY KEY,
  name_en        VARCHAR(255)  NOT NULL,
  name_ar        VARCHAR(255)  NOT NULL,
  description_en TEXT          NULL,
  description_ar TEXT          NULL,
  image_url      VARCHAR(1024) NULL,
  sort_order     INT           NOT NULL DEFAULT 0,
  is_active      BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  CHECK (sort_order >= 0)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS package_categories (
  id             CHAR(36)      NOT NULL PRIMARY KEY,
  name_en        VARCHAR(255)  NOT NULL,
  name_ar        VARCHAR(255)  NOT NULL,
  description_en TEXT          NULL,
  description_ar TEXT          NULL,
  image_url      VARCHAR(1024) NULL,
  sort_order     INT           NOT NULL DEFAULT 0,
  is_active      BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  CHECK (sort_order >= 0)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS hotels (
  id              CHAR(36)      NOT NULL PRIMARY KEY,
  location_id     CHAR(36)      NULL,
  name_en         VARCHAR(255)  NOT NULL,
  name_ar         VARCHAR(255)  NOT NULL,
  description_en  TEXT          NULL,
  description_ar  TEXT          NULL,
  location_en     VARCHAR(255)  NULL,
  location_ar     VARCHAR(255)  NULL,
  address_en      VARCHAR(512)  NULL,
  address_ar      VARCHAR(512)  NULL,
  star_rating     TINYINT       NOT NULL DEFAULT 3,
  price_per_night DECIMAL(12,2) NULL,
  currency        CHAR(3)       NOT NULL DEFAULT 'SAR',
  amenities_en    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  amenities_ar    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  image_url       VARCHAR(1024) NULL,
  images          JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  is_featured     BOOLEAN       NOT NULL DEFAULT FALSE,
  is_active       BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at      DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at      DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  KEY idx_hotels_location (location_id),
  KEY idx_hotels_active_featured (is_active, is_featured),
  CONSTRAINT fk_hotels_location FOREIGN KEY (location_id) REFERENCES locations (id) ON DELETE SET NULL,
  CHECK (star_rating BETWEEN 1 AND 5)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS rooms (
  id              CHAR(36)      NOT NULL PRIMARY KEY,
  hotel_id        CHAR(36)      NOT NULL,
  name_en         VARCHAR(255)  NOT NULL,
  name_ar         VARCHAR(255)  NOT NULL,
  description_en  TEXT          NULL,
  description_ar  TEXT          NULL,
  price_per_night DECIMAL(12,2) NOT NULL,
  currency        CHAR(3)       NOT NULL DEFAULT 'SAR',
  max_guests      INT           NOT NULL,
  amenities_en    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  amenities_ar    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  image_url       VARCHAR(1024) NULL,
  is_active       BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at      DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at      DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  KEY idx_rooms_hotel (hotel_id),
  CONSTRAINT fk_rooms_hotel FOREIGN KEY (hotel_id) REFERENCES hotels (id) ON DELETE CASCADE,
  CHECK (max_guests > 0)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS tour_packages (
  id             CHAR(36)      NOT NULL PRIMARY KEY,
  category_id    CHAR(36)      NULL,
  location_id    CHAR(36)      NULL,
  title_en       VARCHAR(255)  NOT NULL,
  title_ar       VARCHAR(255)  NOT NULL,
  description_en TEXT          NULL,
  description_ar TEXT          NULL,
  location_en    VARCHAR(255)  NULL,
  location_ar    VARCHAR(255)  NULL,
  package_type   VARCHAR(64)   NOT NULL DEFAULT 'umrah',
  duration_days  INT           NOT NULL,
  price          DECIMAL(12,2) NOT NULL,
  currency       CHAR(3)       NOT NULL DEFAULT 'SAR',
  inclusions_en  JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  inclusions_ar  JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  exclusions_en  JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  exclusions_ar  JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  itinerary      JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  image_url      VARCHAR(1024) NULL,
  images         JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  is_featured    BOOLEAN       NOT NULL DEFAULT FALSE,
  is_active      BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  KEY idx_packages_category (category_id),
  KEY idx_packages_location (location_id),
  CONSTRAINT fk_packages_category FOREIGN KEY (category_id) REFERENCES package_categories (id) ON DELETE SET NULL,
  CONSTRAINT fk_packages_location FOREIGN KEY (location_id) REFERENCES locations (id) ON DELETE SET NULL,
  CHECK (duration_days > 0),
  CHECK (price >= 0)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS package_discover_cards (
  id         CHAR(36)      NOT NULL PRIMARY KEY,
  title_en   VARCHAR(255)  NOT NULL,
  title_ar   VARCHAR(255)  NOT NULL,
  image_url  VARCHAR(1024) NULL,
  is_active  BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS events (
  id             CHAR(36)      NOT NULL PRIMARY KEY,
  slug           VARCHAR(191)  NOT NULL,
  title_en       VARCHAR(255)  NOT NULL,
  title_ar       VARCHAR(255)  NOT NULL,
  description_en TEXT          NULL,
  description_ar TEXT          NULL,
  location_en    VARCHAR(255)  NULL,
  location_ar    VARCHAR(255)  NULL,
  start_date     DATETIME(3)   NOT NULL,
  end_date       DATETIME(3)   NULL,
  frequency_en   VARCHAR(255)  NULL,
  frequency_ar   VARCHAR(255)  NULL,
  max_attendees  INT           NULL,
  price          DECIMAL(12,2) NULL,
  currency       CHAR(3)       NOT NULL DEFAULT 'SAR',
  image_url      VARCHAR(1024) NULL,
  images         JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  is_active      BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  UNIQUE KEY uq_events_slug (slug),
  KEY idx_events_start (is_active, start_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS transportation (
  id             CHAR(36)      NOT NULL PRIMARY KEY,
  name_en        VARCHAR(255)  NOT NULL,
  name_ar        VARCHAR(255)  NOT NULL,
  description_en TEXT          NULL,
  description_ar TEXT          NULL,
  vehicle_type   VARCHAR(64)   NULL,
  capacity       INT           NOT NULL,
  price_per_trip DECIMAL(12,2) NULL,
  price_per_day  DECIMAL(12,2) NULL,
  currency       CHAR(3)       NOT NULL DEFAULT 'SAR',
  features_en    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  features_ar    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  exclusions_en  JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  exclusions_ar  JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  image_url      VARCHAR(1024) NULL,
  images         JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  is_active      BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  CHECK (capacity > 0)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS visas (
  id                 CHAR(36)      NOT NULL PRIMARY KEY,
  title_en           VARCHAR(255)  NOT NULL,
  title_ar           VARCHAR(255)  NOT NULL,
  visa_type_en       VARCHAR(128)  NOT NULL,
  visa_type_ar       VARCHAR(128)  NULL,
  description_en     TEXT          NULL,
  description_ar     TEXT          NULL,
  processing_time_en VARCHAR(255)  NULL,
  processing_time_ar VARCHAR(255)  NULL,
  validity_en        VARCHAR(255)  NULL,
  validity_ar        VARCHAR(255)  NULL,
  price              DECIMAL(12,2) NULL,
  currency           CHAR(3)       NOT NULL DEFAULT 'SAR',
  requirements_en    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  requirements_ar    JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  includes_en        JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  includes_ar        JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  excludes_en        JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  excludes_ar        JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  eligibility_en     TEXT          NULL,
  eligibility_ar     TEXT          NULL,
  notes_en           TEXT          NULL,
  notes_ar           TEXT          NULL,
  image_url          VARCHAR(1024) NULL,
  images             JSON          NOT NULL DEFAULT (JSON_ARRAY()),
  is_active          BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at         DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at         DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS blog_posts (
  id           CHAR(36)      NOT NULL PRIMARY KEY,
  slug         VARCHAR(191)  NOT NULL,
  title_en     VARCHAR(255)  NOT NULL,
  title_ar     VARCHAR(255)  NOT NULL,
  excerpt_en   TEXT          NULL,
  excerpt_ar   TEXT          NULL,
  content_en   MEDIUMTEXT    NOT NULL,
  content_ar   MEDIUMTEXT    NULL,
  image_url    VARCHAR(1024) NULL,
  is_published BOOLEAN       NOT NULL DEFAULT FALSE,
  published_at DATETIME(3)   NULL,
  created_at   DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at   DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  UNIQUE KEY uq_blog_posts_slug (slug),
  KEY idx_blog_posts_published (is_published, published_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS testimonials (
  id         CHAR(36)      NOT NULL PRIMARY KEY,
  name       VARCHAR(255)  NOT NULL,
  work       VARCHAR(255)  NULL,
  comment    TEXT          NOT NULL,
  rating     TINYINT       NOT NULL,
  image_url  VARCHAR(1024) NULL,
  is_active  BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  CHECK (rating BETWEEN 1 AND 5)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS inquiries (
  id          CHAR(36)     NOT NULL PRIMARY KEY,
  type        VARCHAR(32)  NOT NULL DEFAULT 'general',
  name        VARCHAR(255) NOT NULL,
  email       VARCHAR(255) NOT NULL,
  phone       VARCHAR(64)  NULL,
  nationality VARCHAR(128) NULL,
  message     TEXT         NULL,
  locale      VARCHAR(8)   NOT NULL DEFAULT 'en',
  meta        JSON         NOT NULL DEFAULT (JSON_OBJECT()),
  status      VARCHAR(32)  NOT NULL DEFAULT 'new',
  created_at  DATETIME(3)  NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at  DATETIME(3)  NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  KEY idx_inquiries_type (type),
  KEY idx_inquiries_status (status, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS admin_users (
  id            CHAR(36)     NOT NULL PRIMARY KEY,
  email         VARCHAR(191) NOT NULL,
  name          VARCHAR(255) NULL,
  password_hash VARCHAR(255) NOT NULL,
  created_at    DATETIME(3)  NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at    DATETIME(3)  NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  UNIQUE KEY uq_admin_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}
