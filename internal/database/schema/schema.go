package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Players

CREATE TABLE IF NOT EXISTS players (
    player_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(50) UNIQUE NOT NULL,
    coins BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Floors: one row per purchased floor, traps live on the floor

CREATE TABLE IF NOT EXISTS floors (
    floor_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    ordinal INTEGER NOT NULL CHECK (ordinal >= 1),
    trap_count INTEGER NOT NULL DEFAULT 0 CHECK (trap_count BETWEEN 0 AND 5),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (player_id, ordinal)
);

-- Plots: fixed grid of 10 per floor

CREATE TABLE IF NOT EXISTS plots (
    plot_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    floor_id UUID NOT NULL REFERENCES floors(floor_id) ON DELETE CASCADE,
    slot INTEGER NOT NULL CHECK (slot BETWEEN 1 AND 10),
    pot_type VARCHAR(20) NOT NULL DEFAULT '',
    seed_class VARCHAR(50) NOT NULL DEFAULT '',
    mutation VARCHAR(20) NOT NULL DEFAULT '',
    base_price INTEGER NOT NULL DEFAULT 0,
    planted_at TIMESTAMPTZ,
    mature_at TIMESTAMPTZ,
    stage VARCHAR(10) NOT NULL DEFAULT 'empty',
    locked BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (floor_id, slot)
);

-- The growth pass scans plots mid-growth on every tick
CREATE INDEX IF NOT EXISTS idx_plots_active ON plots (stage) WHERE stage IN ('planted', 'growing');

-- Inventory

CREATE TABLE IF NOT EXISTS seeds (
    seed_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    class VARCHAR(50) NOT NULL,
    base_price INTEGER NOT NULL DEFAULT 0,
    mutation VARCHAR(20) NOT NULL DEFAULT '',
    is_mature BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_seeds_player_class ON seeds (player_id, class) WHERE is_mature;

CREATE TABLE IF NOT EXISTS pots (
    pot_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    pot_type VARCHAR(20) NOT NULL
);

-- Market: listings are never deleted, a sale flips the status

CREATE TABLE IF NOT EXISTS market_listings (
    listing_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    seller_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    class VARCHAR(50) NOT NULL,
    base_price INTEGER NOT NULL DEFAULT 0,
    mutation VARCHAR(20) NOT NULL DEFAULT '',
    ask_price BIGINT NOT NULL,
    status VARCHAR(10) NOT NULL DEFAULT 'open',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    sold_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_listings_open ON market_listings (created_at) WHERE status = 'open';

-- Gacha: the profile is its own aggregate with its own update path

CREATE TABLE IF NOT EXISTS gacha_profiles (
    player_id UUID PRIMARY KEY REFERENCES players(player_id) ON DELETE CASCADE,
    total_pulls INTEGER NOT NULL DEFAULT 0,
    pity10 INTEGER NOT NULL DEFAULT 0,
    pity90 INTEGER NOT NULL DEFAULT 0,
    step INTEGER NOT NULL DEFAULT 0,
    queue JSONB NOT NULL DEFAULT '[]',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS gacha_rolls (
    roll_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    pull_index INTEGER NOT NULL,
    reward_type VARCHAR(30) NOT NULL,
    class VARCHAR(50) NOT NULL DEFAULT '',
    mutation VARCHAR(20) NOT NULL DEFAULT '',
    value BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_gacha_rolls_player ON gacha_rolls (player_id, created_at DESC);

-- Dynamic price catalog, seeded with the base elemental classes

CREATE TABLE IF NOT EXISTS price_catalog (
    class VARCHAR(50) PRIMARY KEY,
    base_price INTEGER NOT NULL
);

INSERT INTO price_catalog (class, base_price) VALUES
('fire', 100),
('water', 100),
('earth', 100),
('wind', 100)
ON CONFLICT DO NOTHING;
`
